package interfaces

import (
	"context"
	"errors"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

// ErrAccountNotFound is returned when the billing host has no account for
// the given identifier in the tenant context.
var ErrAccountNotFound = errors.New("account not found")

// IAccountDirectory resolves billing-host account attributes.

type IAccountDirectory interface {
	GetAccountByID(ctx context.Context, accountID, tenantID string) (entities.Account, error)
}
