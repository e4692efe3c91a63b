package entities

// Account mirrors the billing-host account attributes the plugin consumes.
// The host's account directory is the source of truth; this is a read model.

type Account struct {
	AccountID  string `json:"account_id"`
	TenantID   string `json:"tenant_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ExternalID string `json:"external_id,omitempty"`
}
