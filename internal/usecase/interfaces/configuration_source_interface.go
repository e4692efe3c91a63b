package interfaces

import "context"

// IConfigurationSource exposes the raw per-tenant configuration string
// uploaded to the billing host. found is false when the tenant never
// uploaded a configuration; that is not an error.

type IConfigurationSource interface {
	GetTenantConfiguration(ctx context.Context, tenantID string) (raw string, found bool, err error)
}
