package response

import "github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"

// PaymentMethodResponse deliberately omits the gateway token; it never
// leaves the plugin.

type PaymentMethodResponse struct {
	PaymentMethodID string `json:"payment_method_id"`
	Type            string `json:"type,omitempty"`
}

func FromStoredPaymentMethod(m entities.StoredPaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: m.PaymentMethodID,
		Type:            string(m.Type),
	}
}

func FromStoredPaymentMethods(methods []entities.StoredPaymentMethod) []PaymentMethodResponse {
	items := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		items = append(items, FromStoredPaymentMethod(m))
	}
	return items
}
