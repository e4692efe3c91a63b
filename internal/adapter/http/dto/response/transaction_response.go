package response

import (
	"time"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

type TransactionResponse struct {
	PaymentID                string    `json:"payment_id"`
	TransactionID            string    `json:"transaction_id"`
	TransactionType          string    `json:"transaction_type,omitempty"`
	Amount                   string    `json:"amount,omitempty"`
	Currency                 string    `json:"currency,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	EffectiveAt              time.Time `json:"effective_at"`
	Status                   string    `json:"status"`
	GatewayErrorCode         string    `json:"gateway_error_code,omitempty"`
	GatewayErrorMessage      string    `json:"gateway_error_message,omitempty"`
	FirstPaymentReferenceID  string    `json:"first_payment_reference_id,omitempty"`
	SecondPaymentReferenceID string    `json:"second_payment_reference_id,omitempty"`
}

func FromTransactionOutcome(o entities.TransactionOutcome) TransactionResponse {
	resp := TransactionResponse{
		PaymentID:                o.PaymentID,
		TransactionID:            o.TransactionID,
		TransactionType:          string(o.TransactionType),
		Currency:                 o.Currency,
		CreatedAt:                o.CreatedAt,
		EffectiveAt:              o.EffectiveAt,
		Status:                   string(o.Status),
		GatewayErrorCode:         o.GatewayErrorCode,
		GatewayErrorMessage:      o.GatewayErrorMessage,
		FirstPaymentReferenceID:  o.FirstPaymentReferenceID,
		SecondPaymentReferenceID: o.SecondPaymentReferenceID,
	}
	if !o.Amount.IsZero() {
		resp.Amount = o.Amount.String()
	}
	return resp
}

func FromTransactionOutcomes(outcomes []entities.TransactionOutcome) []TransactionResponse {
	items := make([]TransactionResponse, 0, len(outcomes))
	for _, o := range outcomes {
		items = append(items, FromTransactionOutcome(o))
	}
	return items
}
