package request

// PaymentMethodRegisterRequest is the payload for payment method
// registration.
//
// Properties carries the gateway-specific key/value pairs supplied by the
// client: paymentType plus the card or ACH fields. Unknown keys are rejected
// downstream.

type PaymentMethodRegisterRequest struct {
	AccountID  string            `json:"account_id"`
	Properties map[string]string `json:"properties"`
}
