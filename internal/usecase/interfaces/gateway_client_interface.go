package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
)

// GatewayStatus is the gateway-reported status of a registration or
// transaction, encoded in the response payload. It is distinct from a
// client-level (transport) error: a call can succeed transport-wise and
// still come back FAILED or DECLINED.

type GatewayStatus string

const (
	GatewayStatusOK       GatewayStatus = "OK"
	GatewayStatusFailed   GatewayStatus = "FAILED"
	GatewayStatusDeclined GatewayStatus = "DECLINED"
)

// CardRegistration is a card to tokenize. Expiration fields are already
// normalized by the registrar (two-digit month, four-digit year).
type CardRegistration struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	CVV2            string
	Name            string
}

// BankAccountRegistration is a checking account to tokenize.
type BankAccountRegistration struct {
	RoutingNumber string
	AccountNumber string
	Name          string
}

// TokenRecord is the gateway response to a registration call. Messages
// carries the gateway's per-field diagnostics when Status is FAILED.
type TokenRecord struct {
	Token    string
	Status   GatewayStatus
	Messages []string
}

// GatewayTransaction is a sale or debit against a stored token.
type GatewayTransaction struct {
	Token  string
	Amount decimal.Decimal
}

// GatewayResult is the gateway response to a transaction call.
type GatewayResult struct {
	Status          GatewayStatus
	ResponseCode    string
	ResponseMessage string
	Messages        []string
	ReferenceID     string
}

// IGatewayClient is the capability set the plugin needs from the external
// BaseCommerce gateway. Credentials are resolved per call so one client can
// serve every tenant; SandboxMode routes the call to the test environment.
//
// A returned error means the call itself failed (network, auth, decode).
// Gateway-reported business failures come back as data in the result value.

type IGatewayClient interface {
	RegisterCard(ctx context.Context, creds entities.TenantCredentials, card CardRegistration) (TokenRecord, error)
	RegisterBankAccount(ctx context.Context, creds entities.TenantCredentials, bank BankAccountRegistration) (TokenRecord, error)
	SubmitCardSale(ctx context.Context, creds entities.TenantCredentials, tx GatewayTransaction) (GatewayResult, error)
	SubmitBankDebit(ctx context.Context, creds entities.TenantCredentials, tx GatewayTransaction) (GatewayResult, error)
}
