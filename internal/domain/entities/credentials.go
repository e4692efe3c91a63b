package entities

// TenantCredentials holds the BaseCommerce gateway credentials for a tenant.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//
// One record per tenant, insert-or-replace on configuration upload.
// Password and APIKey are secrets and are encrypted at rest by the
// repository layer; they are plaintext only in memory.

type TenantCredentials struct {
	TenantID    string `json:"tenant_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	APIKey      string `json:"api_key"`
	SandboxMode bool   `json:"sandbox_mode"`
}

// MissingField returns the name of the first empty credential field, or ""
// when the record is complete. All four fields must be non-empty before any
// gateway call is attempted.
func (c TenantCredentials) MissingField() string {
	switch {
	case c.TenantID == "":
		return "tenantId"
	case c.Username == "":
		return "username"
	case c.Password == "":
		return "password"
	case c.APIKey == "":
		return "key"
	}
	return ""
}
