package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

const (
	defaultProductionBaseURL = "https://gateway.basecommerce.com"
	defaultSandboxBaseURL    = "https://gateway.basecommercesandbox.com"

	pathAddBankCard            = "/api/v4/bank-cards"
	pathAddBankAccount         = "/api/v4/bank-accounts"
	pathBankCardTransaction    = "/api/v4/bank-card-transactions"
	pathBankAccountTransaction = "/api/v4/bank-account-transactions"
)

// BaseCommerceClient talks to the Base Commerce gateway over HTTPS. Sandbox
// credentials route to the sandbox host; every call authenticates with the
// tenant's own username, password and key.

type BaseCommerceClient struct {
	httpClient        *http.Client
	productionBaseURL string
	sandboxBaseURL    string
}

var _ interfaces.IGatewayClient = (*BaseCommerceClient)(nil)

func NewBaseCommerceClient() *BaseCommerceClient {
	return &BaseCommerceClient{
		httpClient:        &http.Client{Timeout: 60 * time.Second},
		productionBaseURL: getenvDefault("BASECOMMERCE_BASE_URL", defaultProductionBaseURL),
		sandboxBaseURL:    getenvDefault("BASECOMMERCE_SANDBOX_BASE_URL", defaultSandboxBaseURL),
	}
}

type addBankCardRequest struct {
	Name            string `json:"name"`
	Number          string `json:"card_number"`
	ExpirationMonth string `json:"expiration_month"`
	ExpirationYear  string `json:"expiration_year"`
	CVV2            string `json:"cvv2"`
}

type addBankAccountRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number"`
	Type          string `json:"account_type"`
}

type tokenResponse struct {
	Token    string   `json:"token"`
	Status   string   `json:"status"`
	Messages []string `json:"messages"`
}

type transactionRequest struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type transactionResponse struct {
	TransactionID   string   `json:"transaction_id"`
	Status          string   `json:"status"`
	ResponseCode    string   `json:"response_code"`
	ResponseMessage string   `json:"response_message"`
	Messages        []string `json:"messages"`
}

func (c *BaseCommerceClient) RegisterCard(ctx context.Context, creds entities.TenantCredentials, card interfaces.CardRegistration) (interfaces.TokenRecord, error) {
	payload := addBankCardRequest{
		Name:            card.Name,
		Number:          card.Number,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		CVV2:            card.CVV2,
	}
	var resp tokenResponse
	if err := c.post(ctx, creds, pathAddBankCard, payload, &resp); err != nil {
		return interfaces.TokenRecord{}, err
	}
	return interfaces.TokenRecord{
		Token:    resp.Token,
		Status:   interfaces.GatewayStatus(resp.Status),
		Messages: resp.Messages,
	}, nil
}

func (c *BaseCommerceClient) RegisterBankAccount(ctx context.Context, creds entities.TenantCredentials, bank interfaces.BankAccountRegistration) (interfaces.TokenRecord, error) {
	payload := addBankAccountRequest{
		Name:          bank.Name,
		AccountNumber: bank.AccountNumber,
		RoutingNumber: bank.RoutingNumber,
		Type:          "CHECKING",
	}
	var resp tokenResponse
	if err := c.post(ctx, creds, pathAddBankAccount, payload, &resp); err != nil {
		return interfaces.TokenRecord{}, err
	}
	return interfaces.TokenRecord{
		Token:    resp.Token,
		Status:   interfaces.GatewayStatus(resp.Status),
		Messages: resp.Messages,
	}, nil
}

func (c *BaseCommerceClient) SubmitCardSale(ctx context.Context, creds entities.TenantCredentials, tx interfaces.GatewayTransaction) (interfaces.GatewayResult, error) {
	return c.submitTransaction(ctx, creds, pathBankCardTransaction, "SALE", tx)
}

func (c *BaseCommerceClient) SubmitBankDebit(ctx context.Context, creds entities.TenantCredentials, tx interfaces.GatewayTransaction) (interfaces.GatewayResult, error) {
	return c.submitTransaction(ctx, creds, pathBankAccountTransaction, "DEBIT", tx)
}

func (c *BaseCommerceClient) submitTransaction(ctx context.Context, creds entities.TenantCredentials, path, txType string, tx interfaces.GatewayTransaction) (interfaces.GatewayResult, error) {
	payload := transactionRequest{
		Token:  tx.Token,
		Type:   txType,
		Amount: tx.Amount.StringFixed(2),
	}
	var resp transactionResponse
	if err := c.post(ctx, creds, path, payload, &resp); err != nil {
		return interfaces.GatewayResult{}, err
	}
	return interfaces.GatewayResult{
		Status:          interfaces.GatewayStatus(resp.Status),
		ResponseCode:    resp.ResponseCode,
		ResponseMessage: resp.ResponseMessage,
		Messages:        resp.Messages,
		ReferenceID:     resp.TransactionID,
	}, nil
}

func (c *BaseCommerceClient) post(ctx context.Context, creds entities.TenantCredentials, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := c.baseURL(creds) + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-BC-KEY", creds.APIKey)
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[gateway][basecommerce] request failed path=%s err=%v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[gateway][basecommerce] unexpected status path=%s status=%d", path, resp.StatusCode)
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[gateway][basecommerce] response decode failed path=%s err=%v", path, err)
		return err
	}
	return nil
}

func (c *BaseCommerceClient) baseURL(creds entities.TenantCredentials) string {
	if creds.SandboxMode {
		return c.sandboxBaseURL
	}
	return c.productionBaseURL
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
