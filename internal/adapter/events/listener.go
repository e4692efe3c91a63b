package events

import (
	"context"
	"errors"
	"log"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

// Event types emitted by the billing host.
const (
	EventTenantConfigChange   = "TENANT_CONFIG_CHANGE"
	EventTenantConfigDeletion = "TENANT_CONFIG_DELETION"
	EventAccountCreation      = "ACCOUNT_CREATION"
	EventAccountChange        = "ACCOUNT_CHANGE"
)

// ExtEvent is a host bus event as delivered on the events topic.
type ExtEvent struct {
	Type      string `json:"event_type"`
	TenantID  string `json:"tenant_id"`
	AccountID string `json:"account_id"`
}

// Listener routes host bus events to the plugin. Tenant configuration events
// re-run credential ingestion; account events only look up and log the
// account. Everything else is ignored.

type Listener struct {
	ingestor usecase.IConfigIngestor
	accounts interfaces.IAccountDirectory
}

func NewListener(ingestor usecase.IConfigIngestor, accounts interfaces.IAccountDirectory) *Listener {
	return &Listener{ingestor: ingestor, accounts: accounts}
}

func (l *Listener) HandleEvent(ctx context.Context, ev ExtEvent) error {
	switch ev.Type {
	case EventTenantConfigChange, EventTenantConfigDeletion:
		log.Printf("[events][listener] tenant config event type=%s tenant_id=%s", ev.Type, ev.TenantID)
		return l.ingestor.Configure(ctx, ev.TenantID)

	case EventAccountCreation, EventAccountChange:
		account, err := l.accounts.GetAccountByID(ctx, ev.AccountID, ev.TenantID)
		if err != nil {
			if errors.Is(err, interfaces.ErrAccountNotFound) {
				log.Printf("[events][listener] unable to find account account_id=%s tenant_id=%s", ev.AccountID, ev.TenantID)
				return nil
			}
			return err
		}
		log.Printf("[events][listener] account information account_id=%s name=%s email=%s", account.AccountID, account.Name, account.Email)
		return nil

	default:
		return nil
	}
}
