package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

var (
	ErrPaymentMethodNotFound    = errors.New("payment method not found")
	ErrUnknownPaymentMethodType = errors.New("unknown stored payment method type")
)

// ITransactionDispatcher is the transaction half of the host plugin
// contract. Purchase is the only operation with real gateway semantics;
// authorize/capture/void/credit/refund are unimplemented upstream and must
// stay cheap stubs returning a CANCELED outcome.

type ITransactionDispatcher interface {
	Purchase(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	Authorize(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	Capture(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	Void(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	Credit(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	Refund(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error)
	GetPaymentInfo(ctx context.Context, tenantID, paymentID string) ([]entities.TransactionOutcome, error)
	SearchPayments(ctx context.Context, tenantID, searchKey string, offset, limit int64) ([]entities.TransactionOutcome, error)
}

type TransactionDispatcher struct {
	creds   interfaces.ICredentialStore
	methods interfaces.IPaymentMethodStore
	gateway interfaces.IGatewayClient
}

var _ ITransactionDispatcher = (*TransactionDispatcher)(nil)

func NewTransactionDispatcher(creds interfaces.ICredentialStore, methods interfaces.IPaymentMethodStore, gateway interfaces.IGatewayClient) *TransactionDispatcher {
	return &TransactionDispatcher{creds: creds, methods: methods, gateway: gateway}
}

// Purchase charges the stored payment method and normalizes the gateway
// response into a TransactionOutcome.
//
// Misconfiguration (absent/incomplete credentials, unknown payment method,
// corrupt stored type) is returned as an error. Gateway declines and
// failures are NOT errors: the host gets an outcome with status ERROR and
// the gateway code/message, because a failed purchase still has a
// transaction record worth returning. A single gateway attempt is made; the
// host owns retry policy.
func (d *TransactionDispatcher) Purchase(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	log.Printf("[transaction][usecase] purchase start tenant_id=%s payment_id=%s payment_method_id=%s amount=%s %s",
		tenantID, req.PaymentID, req.PaymentMethodID, req.Amount, req.Currency)

	creds, err := d.loadCredentials(ctx, tenantID)
	if err != nil {
		return entities.TransactionOutcome{}, err
	}

	method, err := d.methods.GetByID(ctx, req.PaymentMethodID)
	if err != nil {
		log.Printf("[transaction][usecase] could not retrieve payment method payment_method_id=%s err=%v", req.PaymentMethodID, err)
		return entities.TransactionOutcome{}, fmt.Errorf("could not retrieve payment method: %w", err)
	}
	if method.PaymentMethodID == "" {
		log.Printf("[transaction][usecase] payment method not found payment_method_id=%s", req.PaymentMethodID)
		return entities.TransactionOutcome{}, ErrPaymentMethodNotFound
	}

	tx := interfaces.GatewayTransaction{Token: method.GatewayToken, Amount: req.Amount}

	var (
		status      = entities.OutcomeStatusProcessed
		code        string
		message     string
		referenceID string
	)

	switch method.Type {
	case entities.PaymentMethodTypeCard:
		result, err := d.gateway.SubmitCardSale(ctx, creds, tx)
		switch {
		case err != nil:
			log.Printf("[transaction][usecase] could not make payment payment_id=%s err=%v", req.PaymentID, err)
			status = entities.OutcomeStatusError
			code = err.Error()
			message = err.Error()
		case result.Status == interfaces.GatewayStatusFailed:
			status = entities.OutcomeStatusError
			code = result.ResponseCode
			message = result.ResponseMessage
		case result.Status == interfaces.GatewayStatusDeclined:
			// Business decline, not a crash: the outcome carries the
			// gateway code/message and is returned, never thrown.
			status = entities.OutcomeStatusError
			code = result.ResponseCode
			message = result.ResponseMessage
		default:
			referenceID = result.ReferenceID
		}

	case entities.PaymentMethodTypeBank:
		result, err := d.gateway.SubmitBankDebit(ctx, creds, tx)
		switch {
		case err != nil:
			log.Printf("[transaction][usecase] could not make payment payment_id=%s err=%v", req.PaymentID, err)
			status = entities.OutcomeStatusError
			code = err.Error()
			message = err.Error()
		case result.Status == interfaces.GatewayStatusFailed:
			status = entities.OutcomeStatusError
			message = strings.Join(result.Messages, " ")
		case result.Status == interfaces.GatewayStatusDeclined:
			status = entities.OutcomeStatusError
			code = result.ResponseCode
			message = result.ResponseMessage
		default:
			referenceID = result.ReferenceID
		}

	default:
		log.Printf("[transaction][usecase] unknown stored type payment_method_id=%s type=%q", req.PaymentMethodID, method.Type)
		return entities.TransactionOutcome{}, fmt.Errorf("%w: %s", ErrUnknownPaymentMethodType, method.Type)
	}

	now := time.Now().UTC()
	outcome := entities.TransactionOutcome{
		PaymentID:               req.PaymentID,
		TransactionID:           req.TransactionID,
		TransactionType:         entities.TransactionTypePurchase,
		Amount:                  req.Amount,
		Currency:                req.Currency,
		CreatedAt:               now,
		EffectiveAt:             now,
		Status:                  status,
		GatewayErrorCode:        code,
		GatewayErrorMessage:     message,
		FirstPaymentReferenceID: referenceID,
	}
	log.Printf("[transaction][usecase] purchase done payment_id=%s status=%s code=%q", req.PaymentID, outcome.Status, code)
	return outcome, nil
}

func (d *TransactionDispatcher) loadCredentials(ctx context.Context, tenantID string) (entities.TenantCredentials, error) {
	creds, err := d.creds.GetByTenantID(ctx, tenantID)
	if err != nil {
		log.Printf("[transaction][usecase] could not retrieve credentials tenant_id=%s err=%v", tenantID, err)
		return entities.TenantCredentials{}, fmt.Errorf("could not retrieve credentials: %w", err)
	}
	if creds.TenantID == "" {
		log.Printf("[transaction][usecase] credentials not found tenant_id=%s", tenantID)
		return entities.TenantCredentials{}, ErrCredentialsNotFound
	}
	if field := creds.MissingField(); field != "" {
		log.Printf("[transaction][usecase] incomplete credentials tenant_id=%s field=%s", tenantID, field)
		return entities.TenantCredentials{}, fmt.Errorf("%w: %s", ErrMissingCredentialField, field)
	}
	return creds, nil
}

// Lifecycle operations below are not implemented by this gateway
// integration; each returns a CANCELED outcome unconditionally.

func (d *TransactionDispatcher) Authorize(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	return entities.CanceledOutcome(req.PaymentID, req.TransactionID), nil
}

func (d *TransactionDispatcher) Capture(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	return entities.CanceledOutcome(req.PaymentID, req.TransactionID), nil
}

func (d *TransactionDispatcher) Void(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	return entities.CanceledOutcome(req.PaymentID, req.TransactionID), nil
}

func (d *TransactionDispatcher) Credit(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	return entities.CanceledOutcome(req.PaymentID, req.TransactionID), nil
}

func (d *TransactionDispatcher) Refund(ctx context.Context, tenantID string, req entities.TransactionRequest) (entities.TransactionOutcome, error) {
	return entities.CanceledOutcome(req.PaymentID, req.TransactionID), nil
}

func (d *TransactionDispatcher) GetPaymentInfo(ctx context.Context, tenantID, paymentID string) ([]entities.TransactionOutcome, error) {
	return []entities.TransactionOutcome{}, nil
}

func (d *TransactionDispatcher) SearchPayments(ctx context.Context, tenantID, searchKey string, offset, limit int64) ([]entities.TransactionOutcome, error) {
	return []entities.TransactionOutcome{}, nil
}
