package events

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
	mock_interfaces "github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces/mocks"
)

type fakeIngestor struct {
	calls []string
	err   error
}

func (f *fakeIngestor) Configure(_ context.Context, tenantID string) error {
	f.calls = append(f.calls, tenantID)
	return f.err
}

func TestListener_TenantConfigEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)

	for _, eventType := range []string{EventTenantConfigChange, EventTenantConfigDeletion} {
		t.Run(eventType, func(t *testing.T) {
			ingestor := &fakeIngestor{}
			listener := NewListener(ingestor, accounts)

			err := listener.HandleEvent(context.Background(), ExtEvent{Type: eventType, TenantID: "tenant-1"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ingestor.calls) != 1 || ingestor.calls[0] != "tenant-1" {
				t.Fatalf("expected one ingestion for tenant-1, got %v", ingestor.calls)
			}
		})
	}
}

func TestListener_TenantConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)

	ingestor := &fakeIngestor{err: errors.New("store down")}
	listener := NewListener(ingestor, accounts)

	if err := listener.HandleEvent(context.Background(), ExtEvent{Type: EventTenantConfigChange, TenantID: "tenant-1"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListener_AccountEvents(t *testing.T) {
	t.Run("account found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)
		ingestor := &fakeIngestor{}
		listener := NewListener(ingestor, accounts)

		accounts.EXPECT().GetAccountByID(gomock.Any(), "acc-1", "tenant-1").Return(entities.Account{AccountID: "acc-1", Name: "Alice"}, nil)

		err := listener.HandleEvent(context.Background(), ExtEvent{Type: EventAccountCreation, TenantID: "tenant-1", AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ingestor.calls) != 0 {
			t.Fatalf("account events must not trigger ingestion")
		}
	})

	t.Run("account not found is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)
		listener := NewListener(&fakeIngestor{}, accounts)

		accounts.EXPECT().GetAccountByID(gomock.Any(), "acc-1", "tenant-1").Return(entities.Account{}, interfaces.ErrAccountNotFound)

		err := listener.HandleEvent(context.Background(), ExtEvent{Type: EventAccountChange, TenantID: "tenant-1", AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("not-found must not be an error: %v", err)
		}
	})

	t.Run("directory error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)
		listener := NewListener(&fakeIngestor{}, accounts)

		accounts.EXPECT().GetAccountByID(gomock.Any(), "acc-1", "tenant-1").Return(entities.Account{}, errors.New("host down"))

		if err := listener.HandleEvent(context.Background(), ExtEvent{Type: EventAccountChange, TenantID: "tenant-1", AccountID: "acc-1"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestListener_UnhandledEventsAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	accounts := mock_interfaces.NewMockIAccountDirectory(ctrl)
	ingestor := &fakeIngestor{}
	listener := NewListener(ingestor, accounts)

	for _, eventType := range []string{"INVOICE_CREATION", "SUBSCRIPTION_CANCEL", ""} {
		if err := listener.HandleEvent(context.Background(), ExtEvent{Type: eventType, TenantID: "tenant-1"}); err != nil {
			t.Fatalf("unexpected error for %q: %v", eventType, err)
		}
	}
	if len(ingestor.calls) != 0 {
		t.Fatalf("unhandled events must be no-ops, got %v", ingestor.calls)
	}
}
