package request

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

var errInvalidAmount = errors.New("amount must be a positive decimal")

// TransactionCreateRequest is the payload for the transaction routes.
type TransactionCreateRequest struct {
	AccountID       string `json:"account_id"`
	TransactionID   string `json:"transaction_id"`
	PaymentMethodID string `json:"payment_method_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
}

// ToTransactionRequest parses the amount and builds the domain request for
// the given payment id. A missing transaction id gets a generated one.
func (r TransactionCreateRequest) ToTransactionRequest(paymentID string) (entities.TransactionRequest, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || amount.IsNegative() || amount.IsZero() {
		return entities.TransactionRequest{}, errInvalidAmount
	}
	transactionID := r.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	return entities.TransactionRequest{
		AccountID:       r.AccountID,
		PaymentID:       paymentID,
		TransactionID:   transactionID,
		PaymentMethodID: r.PaymentMethodID,
		Amount:          amount,
		Currency:        r.Currency,
	}, nil
}
