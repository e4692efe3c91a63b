package request

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionCreateRequest_ToTransactionRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		payload := TransactionCreateRequest{
			AccountID:       "acc-1",
			TransactionID:   "txn-1",
			PaymentMethodID: "pm-1",
			Amount:          "19.99",
			Currency:        "USD",
		}
		req, err := payload.ToTransactionRequest("pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.PaymentID != "pay-1" || req.TransactionID != "txn-1" {
			t.Fatalf("unexpected ids: %+v", req)
		}
		if !req.Amount.Equal(decimal.RequireFromString("19.99")) {
			t.Fatalf("unexpected amount: %s", req.Amount)
		}
	})

	t.Run("missing transaction id gets generated", func(t *testing.T) {
		payload := TransactionCreateRequest{PaymentMethodID: "pm-1", Amount: "10", Currency: "USD"}
		req, err := payload.ToTransactionRequest("pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.TransactionID == "" {
			t.Fatalf("expected generated transaction id")
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "0", "-1.50"} {
			payload := TransactionCreateRequest{PaymentMethodID: "pm-1", Amount: amount}
			if _, err := payload.ToTransactionRequest("pay-1"); err == nil {
				t.Fatalf("expected error for amount %q", amount)
			}
		}
	})
}
