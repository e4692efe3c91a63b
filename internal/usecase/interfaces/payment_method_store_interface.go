package interfaces

import (
	"context"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

// IPaymentMethodStore abstracts DynamoDB persistence for StoredPaymentMethod.

type IPaymentMethodStore interface {
	Upsert(ctx context.Context, m entities.StoredPaymentMethod) (entities.StoredPaymentMethod, error)
	GetByID(ctx context.Context, paymentMethodID string) (entities.StoredPaymentMethod, error)
}
