package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

var (
	ErrCredentialsNotFound    = errors.New("credentials not found for tenant")
	ErrMissingCredentialField = errors.New("missing credential field")
	ErrUnrecognizedProperty   = errors.New("unrecognized payment method property")
	ErrMissingField           = errors.New("missing payment method field")
	ErrUnknownPaymentType     = errors.New("unknown payment type")
	ErrGatewayRegistration    = errors.New("gateway rejected payment method registration")
)

// Recognized payment-method property keys. paymentType selects the branch;
// the rest are type-specific.
const (
	propPaymentType   = "paymentType"
	propCardNumber    = "creditCardNumber"
	propCardCVV2      = "creditCardCVV2"
	propCardExpMonth  = "creditCardExpirationMonth"
	propCardExpYear   = "creditCardExpirationYear"
	propRoutingNumber = "routingNumber"
	propAccountNumber = "accountNumber"
)

const (
	paymentTypeCard = "card"
	paymentTypeACH  = "ach"
)

// IPaymentMethodRegistrar tokenizes client-supplied payment details against
// the gateway and stores the resulting token. It also carries the
// payment-method lifecycle operations of the host plugin contract; all but
// RegisterPaymentMethod are unimplemented pass-through stubs.

type IPaymentMethodRegistrar interface {
	RegisterPaymentMethod(ctx context.Context, tenantID, accountID, paymentMethodID string, properties map[string]string) error
	DeletePaymentMethod(ctx context.Context, tenantID, paymentMethodID string) error
	GetPaymentMethodDetail(ctx context.Context, tenantID, paymentMethodID string) (entities.StoredPaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, tenantID, paymentMethodID string) error
	GetPaymentMethods(ctx context.Context, tenantID, accountID string) ([]entities.StoredPaymentMethod, error)
	SearchPaymentMethods(ctx context.Context, tenantID, searchKey string, offset, limit int64) ([]entities.StoredPaymentMethod, error)
	ResetPaymentMethods(ctx context.Context, tenantID, accountID string) error
}

type PaymentMethodRegistrar struct {
	creds   interfaces.ICredentialStore
	methods interfaces.IPaymentMethodStore
	gateway interfaces.IGatewayClient
}

var _ IPaymentMethodRegistrar = (*PaymentMethodRegistrar)(nil)

func NewPaymentMethodRegistrar(creds interfaces.ICredentialStore, methods interfaces.IPaymentMethodStore, gateway interfaces.IGatewayClient) *PaymentMethodRegistrar {
	return &PaymentMethodRegistrar{creds: creds, methods: methods, gateway: gateway}
}

// RegisterPaymentMethod validates the supplied properties, registers the
// card or bank account with the gateway and upserts the issued token.
//
// Validation fails fast, first violated check wins: credentials present,
// credential fields non-empty, property keys recognized, type-specific
// fields non-empty. No gateway call and no store write happen before every
// check passes. A gateway transport failure propagates as an error here
// (unlike purchase) because a failed registration leaves no artifact worth
// returning.
func (r *PaymentMethodRegistrar) RegisterPaymentMethod(ctx context.Context, tenantID, accountID, paymentMethodID string, properties map[string]string) error {
	log.Printf("[paymentmethod][usecase] register start tenant_id=%s account_id=%s payment_method_id=%s", tenantID, accountID, paymentMethodID)

	creds, err := r.loadCredentials(ctx, tenantID)
	if err != nil {
		return err
	}

	props, err := parseRegistrationProperties(properties)
	if err != nil {
		log.Printf("[paymentmethod][usecase] invalid properties payment_method_id=%s err=%v", paymentMethodID, err)
		return err
	}

	var (
		token      string
		methodType entities.PaymentMethodType
	)

	switch props.paymentType {
	case paymentTypeCard:
		card := interfaces.CardRegistration{
			Number:          props.cardNumber,
			ExpirationMonth: normalizeExpirationMonth(props.cardExpMonth),
			ExpirationYear:  normalizeExpirationYear(props.cardExpYear),
			CVV2:            props.cardCVV2,
			Name:            "Card " + lastFour(props.cardNumber),
		}
		record, err := r.gateway.RegisterCard(ctx, creds, card)
		if err != nil {
			log.Printf("[paymentmethod][usecase] error while saving bank card payment_method_id=%s err=%v", paymentMethodID, err)
			return fmt.Errorf("error while saving bank card: %w", err)
		}
		if record.Status == interfaces.GatewayStatusFailed {
			msg := strings.Join(record.Messages, " ")
			log.Printf("[paymentmethod][usecase] gateway rejected bank card payment_method_id=%s messages=%q", paymentMethodID, msg)
			return fmt.Errorf("%w: %s", ErrGatewayRegistration, msg)
		}
		token = record.Token
		methodType = entities.PaymentMethodTypeCard

	case paymentTypeACH:
		bank := interfaces.BankAccountRegistration{
			RoutingNumber: props.routingNumber,
			AccountNumber: props.accountNumber,
			Name:          "Bank " + lastFour(props.accountNumber),
		}
		record, err := r.gateway.RegisterBankAccount(ctx, creds, bank)
		if err != nil {
			log.Printf("[paymentmethod][usecase] error while saving bank account payment_method_id=%s err=%v", paymentMethodID, err)
			return fmt.Errorf("error while saving bank account: %w", err)
		}
		if record.Status == interfaces.GatewayStatusFailed {
			msg := strings.Join(record.Messages, " ")
			log.Printf("[paymentmethod][usecase] gateway rejected bank account payment_method_id=%s messages=%q", paymentMethodID, msg)
			return fmt.Errorf("%w: %s", ErrGatewayRegistration, msg)
		}
		token = record.Token
		methodType = entities.PaymentMethodTypeBank

	default:
		return fmt.Errorf("%w: %s", ErrUnknownPaymentType, props.paymentType)
	}

	stored := entities.StoredPaymentMethod{
		PaymentMethodID: paymentMethodID,
		GatewayToken:    token,
		Type:            methodType,
	}
	if _, err := r.methods.Upsert(ctx, stored); err != nil {
		log.Printf("[paymentmethod][usecase] could not save token payment_method_id=%s err=%v", paymentMethodID, err)
		return fmt.Errorf("could not save token: %w", err)
	}
	log.Printf("[paymentmethod][usecase] register success payment_method_id=%s type=%s", paymentMethodID, methodType)
	return nil
}

func (r *PaymentMethodRegistrar) loadCredentials(ctx context.Context, tenantID string) (entities.TenantCredentials, error) {
	creds, err := r.creds.GetByTenantID(ctx, tenantID)
	if err != nil {
		log.Printf("[paymentmethod][usecase] could not retrieve credentials tenant_id=%s err=%v", tenantID, err)
		return entities.TenantCredentials{}, fmt.Errorf("could not retrieve credentials: %w", err)
	}
	if creds.TenantID == "" {
		log.Printf("[paymentmethod][usecase] credentials not found tenant_id=%s", tenantID)
		return entities.TenantCredentials{}, ErrCredentialsNotFound
	}
	if field := creds.MissingField(); field != "" {
		log.Printf("[paymentmethod][usecase] incomplete credentials tenant_id=%s field=%s", tenantID, field)
		return entities.TenantCredentials{}, fmt.Errorf("%w: %s", ErrMissingCredentialField, field)
	}
	return creds, nil
}

type registrationProperties struct {
	paymentType   string
	cardNumber    string
	cardCVV2      string
	cardExpMonth  string
	cardExpYear   string
	routingNumber string
	accountNumber string
}

// parseRegistrationProperties maps the client-supplied key/value pairs onto
// the closed recognized key set and enforces the per-type required fields.
func parseRegistrationProperties(properties map[string]string) (registrationProperties, error) {
	var p registrationProperties
	for key, value := range properties {
		switch key {
		case propPaymentType:
			p.paymentType = value
		case propCardNumber:
			p.cardNumber = value
		case propCardCVV2:
			p.cardCVV2 = value
		case propCardExpMonth:
			p.cardExpMonth = value
		case propCardExpYear:
			p.cardExpYear = value
		case propRoutingNumber:
			p.routingNumber = value
		case propAccountNumber:
			p.accountNumber = value
		default:
			return registrationProperties{}, fmt.Errorf("%w: %s", ErrUnrecognizedProperty, key)
		}
	}

	if p.paymentType == "" {
		return registrationProperties{}, fmt.Errorf("%w: %s", ErrMissingField, propPaymentType)
	}

	switch p.paymentType {
	case paymentTypeCard:
		for _, field := range []struct{ name, value string }{
			{propCardNumber, p.cardNumber},
			{propCardExpMonth, p.cardExpMonth},
			{propCardExpYear, p.cardExpYear},
			{propCardCVV2, p.cardCVV2},
		} {
			if field.value == "" {
				return registrationProperties{}, fmt.Errorf("%w: %s", ErrMissingField, field.name)
			}
		}
	case paymentTypeACH:
		for _, field := range []struct{ name, value string }{
			{propRoutingNumber, p.routingNumber},
			{propAccountNumber, p.accountNumber},
		} {
			if field.value == "" {
				return registrationProperties{}, fmt.Errorf("%w: %s", ErrMissingField, field.name)
			}
		}
	}
	return p, nil
}

// normalizeExpirationMonth left-pads a one-digit month to two digits.
func normalizeExpirationMonth(month string) string {
	if len(month) == 1 {
		return "0" + month
	}
	return month
}

// normalizeExpirationYear prefixes the century to the host's two-digit
// year. TODO: reject inputs that are not exactly two digits; "20"+YY also
// stops working after 2099.
func normalizeExpirationYear(year string) string {
	return "20" + year
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

// The operations below are part of the host plugin contract but are not
// implemented by this gateway integration. They must stay cheap no-ops.

func (r *PaymentMethodRegistrar) DeletePaymentMethod(ctx context.Context, tenantID, paymentMethodID string) error {
	return nil
}

func (r *PaymentMethodRegistrar) GetPaymentMethodDetail(ctx context.Context, tenantID, paymentMethodID string) (entities.StoredPaymentMethod, error) {
	return entities.StoredPaymentMethod{PaymentMethodID: paymentMethodID}, nil
}

func (r *PaymentMethodRegistrar) SetDefaultPaymentMethod(ctx context.Context, tenantID, paymentMethodID string) error {
	return nil
}

func (r *PaymentMethodRegistrar) GetPaymentMethods(ctx context.Context, tenantID, accountID string) ([]entities.StoredPaymentMethod, error) {
	return []entities.StoredPaymentMethod{}, nil
}

func (r *PaymentMethodRegistrar) SearchPaymentMethods(ctx context.Context, tenantID, searchKey string, offset, limit int64) ([]entities.StoredPaymentMethod, error) {
	return []entities.StoredPaymentMethod{}, nil
}

func (r *PaymentMethodRegistrar) ResetPaymentMethods(ctx context.Context, tenantID, accountID string) error {
	return nil
}
