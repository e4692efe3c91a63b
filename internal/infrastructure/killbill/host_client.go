package killbill

import (
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
	defaultBaseURL  = "http://localhost:8080"
	defaultUsername = "admin"
	defaultPassword = "password"

	pluginName = "killbill-basecommerce"
)

// HostClient reads per-tenant plugin configuration and account data from the
// billing host's REST API.

type HostClient struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

var (
	_ interfaces.IConfigurationSource = (*HostClient)(nil)
	_ interfaces.IAccountDirectory    = (*HostClient)(nil)
)

func NewHostClient() *HostClient {
	return &HostClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    getenvDefault("KILLBILL_BASE_URL", defaultBaseURL),
		username:   getenvDefault("KILLBILL_USERNAME", defaultUsername),
		password:   getenvDefault("KILLBILL_PASSWORD", defaultPassword),
	}
}

// GetTenantConfiguration returns the raw configuration string uploaded for
// this plugin. found is false when the tenant has no upload (or deleted it).
func (c *HostClient) GetTenantConfiguration(ctx context.Context, tenantID string) (string, bool, error) {
	url := fmt.Sprintf("%s/1.0/kb/tenants/%s/pluginConfig/%s", c.baseURL, tenantID, pluginName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[host][client] tenant config request failed tenant_id=%s err=%v", tenantID, err)
		return "", false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", false, fmt.Errorf("host returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, err
	}
	if len(raw) == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

type accountPayload struct {
	AccountID  string `json:"account_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ExternalID string `json:"external_key"`
}

func (c *HostClient) GetAccountByID(ctx context.Context, accountID, tenantID string) (entities.Account, error) {
	url := fmt.Sprintf("%s/1.0/kb/accounts/%s", c.baseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Account{}, err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("X-Killbill-TenantId", tenantID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[host][client] account request failed account_id=%s err=%v", accountID, err)
		return entities.Account{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.Account{}, interfaces.ErrAccountNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return entities.Account{}, fmt.Errorf("host returned status %d", resp.StatusCode)
	}

	var payload accountPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		AccountID:  payload.AccountID,
		TenantID:   tenantID,
		Name:       payload.Name,
		Email:      payload.Email,
		ExternalID: payload.ExternalID,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
