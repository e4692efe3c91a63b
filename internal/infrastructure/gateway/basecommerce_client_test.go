package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

func testClient(productionURL, sandboxURL string) *BaseCommerceClient {
	c := NewBaseCommerceClient()
	c.productionBaseURL = productionURL
	c.sandboxBaseURL = sandboxURL
	return c
}

func sandboxCreds() entities.TenantCredentials {
	return entities.TenantCredentials{
		TenantID:    "tenant-1",
		Username:    "alice",
		Password:    "secret",
		APIKey:      "key123",
		SandboxMode: true,
	}
}

func TestBaseCommerceClient_RegisterCard(t *testing.T) {
	var gotPath, gotUser, gotPass, gotKey string
	var gotBody addBankCardRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		gotKey = r.Header.Get("X-BC-KEY")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: "tok_abc", Status: "OK"})
	}))
	defer srv.Close()

	client := testClient("http://production.invalid", srv.URL)
	record, err := client.RegisterCard(context.Background(), sandboxCreds(), interfaces.CardRegistration{
		Number:          "4111111111111111",
		ExpirationMonth: "05",
		ExpirationYear:  "2027",
		CVV2:            "123",
		Name:            "Card 1111",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Token != "tok_abc" || record.Status != interfaces.GatewayStatusOK {
		t.Fatalf("unexpected record: %+v", record)
	}
	if gotPath != pathAddBankCard {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotUser != "alice" || gotPass != "secret" || gotKey != "key123" {
		t.Fatalf("unexpected auth: user=%s pass=%s key=%s", gotUser, gotPass, gotKey)
	}
	if gotBody.Number != "4111111111111111" || gotBody.ExpirationYear != "2027" || gotBody.CVV2 != "123" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestBaseCommerceClient_RegisterBankAccount_FailedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body addBankAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Type != "CHECKING" {
			t.Fatalf("unexpected account type: %s", body.Type)
		}
		_ = json.NewEncoder(w).Encode(tokenResponse{Status: "FAILED", Messages: []string{"invalid routing number"}})
	}))
	defer srv.Close()

	client := testClient("http://production.invalid", srv.URL)
	record, err := client.RegisterBankAccount(context.Background(), sandboxCreds(), interfaces.BankAccountRegistration{
		RoutingNumber: "110000000",
		AccountNumber: "000123456789",
		Name:          "Bank 6789",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Status != interfaces.GatewayStatusFailed {
		t.Fatalf("expected FAILED, got %s", record.Status)
	}
	if len(record.Messages) != 1 || record.Messages[0] != "invalid routing number" {
		t.Fatalf("unexpected messages: %v", record.Messages)
	}
}

func TestBaseCommerceClient_SubmitCardSale(t *testing.T) {
	var gotBody transactionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathBankCardTransaction {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(transactionResponse{TransactionID: "ref-1", Status: "OK"})
	}))
	defer srv.Close()

	client := testClient("http://production.invalid", srv.URL)
	result, err := client.SubmitCardSale(context.Background(), sandboxCreds(), interfaces.GatewayTransaction{
		Token:  "tok_abc",
		Amount: decimal.RequireFromString("19.99"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != interfaces.GatewayStatusOK || result.ReferenceID != "ref-1" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if gotBody.Token != "tok_abc" || gotBody.Type != "SALE" || gotBody.Amount != "19.99" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestBaseCommerceClient_SubmitBankDebit_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Type != "DEBIT" {
			t.Fatalf("unexpected type: %s", body.Type)
		}
		_ = json.NewEncoder(w).Encode(transactionResponse{
			Status:          "DECLINED",
			ResponseCode:    "D001",
			ResponseMessage: "insufficient funds",
		})
	}))
	defer srv.Close()

	client := testClient("http://production.invalid", srv.URL)
	result, err := client.SubmitBankDebit(context.Background(), sandboxCreds(), interfaces.GatewayTransaction{
		Token:  "tok_bank",
		Amount: decimal.RequireFromString("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != interfaces.GatewayStatusDeclined || result.ResponseCode != "D001" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestBaseCommerceClient_SandboxRouting(t *testing.T) {
	production := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: "tok_prod", Status: "OK"})
	}))
	defer production.Close()
	sandbox := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenResponse{Token: "tok_sandbox", Status: "OK"})
	}))
	defer sandbox.Close()

	client := testClient(production.URL, sandbox.URL)

	creds := sandboxCreds()
	record, err := client.RegisterCard(context.Background(), creds, interfaces.CardRegistration{Number: "4111111111111111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Token != "tok_sandbox" {
		t.Fatalf("sandbox credentials must hit the sandbox host, got %s", record.Token)
	}

	creds.SandboxMode = false
	record, err = client.RegisterCard(context.Background(), creds, interfaces.CardRegistration{Number: "4111111111111111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Token != "tok_prod" {
		t.Fatalf("production credentials must hit the production host, got %s", record.Token)
	}
}

func TestBaseCommerceClient_ErrorResponses(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := testClient("http://production.invalid", srv.URL)
		if _, err := client.RegisterCard(context.Background(), sandboxCreds(), interfaces.CardRegistration{}); err == nil {
			t.Fatalf("expected error for 401 response")
		}
	})

	t.Run("malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := testClient("http://production.invalid", srv.URL)
		if _, err := client.SubmitCardSale(context.Background(), sandboxCreds(), interfaces.GatewayTransaction{Amount: decimal.New(1, 0)}); err == nil {
			t.Fatalf("expected error for malformed body")
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := testClient("http://production.invalid", "http://127.0.0.1:1")
		if _, err := client.SubmitBankDebit(context.Background(), sandboxCreds(), interfaces.GatewayTransaction{Amount: decimal.New(1, 0)}); err == nil {
			t.Fatalf("expected transport error")
		}
	})
}
