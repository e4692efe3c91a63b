package interfaces

import (
	"context"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

// ICredentialStore abstracts DynamoDB persistence for TenantCredentials.
//
// Upsert is insert-or-replace keyed by tenant ID (last writer wins); the
// repository must perform it as a single atomic write. GetByTenantID returns
// a zero-value record when the tenant has never been configured.

type ICredentialStore interface {
	Upsert(ctx context.Context, c entities.TenantCredentials) (entities.TenantCredentials, error)
	GetByTenantID(ctx context.Context, tenantID string) (entities.TenantCredentials, error)
}
