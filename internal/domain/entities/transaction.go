package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutcomeStatus is the normalized tri-state result of a plugin operation,
// distinct from the raw gateway-specific status codes.

type OutcomeStatus string

const (
	OutcomeStatusProcessed OutcomeStatus = "PROCESSED"
	OutcomeStatusError     OutcomeStatus = "ERROR"
	OutcomeStatusCanceled  OutcomeStatus = "CANCELED"
)

// TransactionType identifies the plugin operation that produced an outcome.

type TransactionType string

const (
	TransactionTypeAuthorize TransactionType = "AUTHORIZE"
	TransactionTypeCapture   TransactionType = "CAPTURE"
	TransactionTypePurchase  TransactionType = "PURCHASE"
	TransactionTypeVoid      TransactionType = "VOID"
	TransactionTypeCredit    TransactionType = "CREDIT"
	TransactionTypeRefund    TransactionType = "REFUND"
)

// TransactionRequest carries a host-issued charge request. It is ephemeral:
// never persisted, consumed by a single dispatch.

type TransactionRequest struct {
	AccountID       string          `json:"account_id"`
	PaymentID       string          `json:"payment_id"`
	TransactionID   string          `json:"transaction_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// TransactionOutcome is the normalized result returned to the billing host.
//
// Status is PROCESSED only when the gateway call succeeded transport-wise
// and the gateway reported a non-failed, non-declined status. Declines and
// gateway failures are data here, not errors: the host still gets a
// transaction record with the gateway code/message.

type TransactionOutcome struct {
	PaymentID                string          `json:"payment_id"`
	TransactionID            string          `json:"transaction_id"`
	TransactionType          TransactionType `json:"transaction_type"`
	Amount                   decimal.Decimal `json:"amount"`
	Currency                 string          `json:"currency"`
	CreatedAt                time.Time       `json:"created_at"`
	EffectiveAt              time.Time       `json:"effective_at"`
	Status                   OutcomeStatus   `json:"status"`
	GatewayErrorCode         string          `json:"gateway_error_code,omitempty"`
	GatewayErrorMessage      string          `json:"gateway_error_message,omitempty"`
	FirstPaymentReferenceID  string          `json:"first_payment_reference_id,omitempty"`
	SecondPaymentReferenceID string          `json:"second_payment_reference_id,omitempty"`
}

// CanceledOutcome is the empty-shaped outcome returned by the unimplemented
// lifecycle operations (authorize, capture, void, credit, refund).
func CanceledOutcome(paymentID, transactionID string) TransactionOutcome {
	return TransactionOutcome{
		PaymentID:     paymentID,
		TransactionID: transactionID,
		Status:        OutcomeStatusCanceled,
	}
}
