package killbill

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
)

func hostClientFor(url string) *HostClient {
	c := NewHostClient()
	c.baseURL = url
	c.username = "admin"
	c.password = "password"
	return c
}

func TestHostClient_GetTenantConfiguration(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/1.0/kb/tenants/tenant-1/pluginConfig/killbill-basecommerce" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			user, pass, _ := r.BasicAuth()
			if user != "admin" || pass != "password" {
				t.Fatalf("unexpected auth: %s/%s", user, pass)
			}
			_, _ = w.Write([]byte("alice;secret;key123;true"))
		}))
		defer srv.Close()

		raw, found, err := hostClientFor(srv.URL).GetTenantConfiguration(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || raw != "alice;secret;key123;true" {
			t.Fatalf("unexpected result: found=%v raw=%q", found, raw)
		}
	})

	t.Run("absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, found, err := hostClientFor(srv.URL).GetTenantConfiguration(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected found=false for 404")
		}
	})

	t.Run("empty body treated as absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		defer srv.Close()

		_, found, err := hostClientFor(srv.URL).GetTenantConfiguration(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatalf("expected found=false for empty body")
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, _, err := hostClientFor(srv.URL).GetTenantConfiguration(context.Background(), "tenant-1"); err == nil {
			t.Fatalf("expected error for 500 response")
		}
	})
}

func TestHostClient_GetAccountByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/1.0/kb/accounts/acc-1" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if r.Header.Get("X-Killbill-TenantId") != "tenant-1" {
				t.Fatalf("missing tenant header")
			}
			_ = json.NewEncoder(w).Encode(accountPayload{
				AccountID:  "acc-1",
				Name:       "Alice",
				Email:      "alice@example.com",
				ExternalID: "ext-1",
			})
		}))
		defer srv.Close()

		account, err := hostClientFor(srv.URL).GetAccountByID(context.Background(), "acc-1", "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.AccountID != "acc-1" || account.TenantID != "tenant-1" || account.Name != "Alice" {
			t.Fatalf("unexpected account: %+v", account)
		}
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, err := hostClientFor(srv.URL).GetAccountByID(context.Background(), "acc-1", "tenant-1")
		if !errors.Is(err, interfaces.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
