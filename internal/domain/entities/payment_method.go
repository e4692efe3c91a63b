package entities

// PaymentMethodType tags how a stored gateway token charges: bank card sale
// or bank account debit. Any other stored value is a data-integrity error.

type PaymentMethodType string

const (
	PaymentMethodTypeCard PaymentMethodType = "card"
	PaymentMethodTypeBank PaymentMethodType = "bank"
)

func (t PaymentMethodType) Valid() bool {
	return t == PaymentMethodTypeCard || t == PaymentMethodTypeBank
}

// StoredPaymentMethod maps a host payment-method identifier to the
// gateway-issued token standing in for the raw card or bank account.
//
// Storage model (DynamoDB):
//   - PK: payment_method_id
//
// One record per payment-method identifier, insert-or-replace on
// re-registration. GatewayToken is encrypted at rest by the repository.

type StoredPaymentMethod struct {
	PaymentMethodID string            `json:"payment_method_id"`
	GatewayToken    string            `json:"gateway_token"`
	Type            PaymentMethodType `json:"type"`
}
