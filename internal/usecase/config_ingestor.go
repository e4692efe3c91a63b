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
	ErrMalformedConfig = errors.New("malformed tenant configuration")
)

// configParts is the fixed arity of the uploaded credential string:
// username;password;key;sandboxFlag.
const configParts = 4

// IConfigIngestor consumes tenant-configuration events and keeps the
// credential store in sync with the latest upload.

type IConfigIngestor interface {
	Configure(ctx context.Context, tenantID string) error
}

type ConfigIngestor struct {
	store  interfaces.ICredentialStore
	source interfaces.IConfigurationSource
}

var _ IConfigIngestor = (*ConfigIngestor)(nil)

func NewConfigIngestor(store interfaces.ICredentialStore, source interfaces.IConfigurationSource) *ConfigIngestor {
	return &ConfigIngestor{store: store, source: source}
}

// Configure loads the raw uploaded configuration for the tenant and upserts
// the parsed credentials. An absent tenant ID or a missing upload is a
// no-op: previously stored credentials (or the host's global default) stay
// untouched. Re-applying the same upload is idempotent.
//
// Both config-change and config-deletion events route here; a deletion does
// not purge stored credentials because the host reports no upload for the
// tenant afterwards, which lands on the no-op path.
func (i *ConfigIngestor) Configure(ctx context.Context, tenantID string) error {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		log.Printf("[config][usecase] configure skipped: no tenant id")
		return nil
	}

	raw, found, err := i.source.GetTenantConfiguration(ctx, tenantID)
	if err != nil {
		log.Printf("[config][usecase] could not retrieve configuration tenant_id=%s err=%v", tenantID, err)
		return fmt.Errorf("could not retrieve configuration: %w", err)
	}
	if !found {
		log.Printf("[config][usecase] no configuration uploaded tenant_id=%s; keeping stored credentials", tenantID)
		return nil
	}

	creds, err := parseCredentials(tenantID, raw)
	if err != nil {
		log.Printf("[config][usecase] invalid configuration tenant_id=%s err=%v", tenantID, err)
		return err
	}

	if _, err := i.store.Upsert(ctx, creds); err != nil {
		log.Printf("[config][usecase] could not save credentials tenant_id=%s err=%v", tenantID, err)
		return fmt.Errorf("could not save credentials: %w", err)
	}
	log.Printf("[config][usecase] configured tenant_id=%s username=%s sandbox=%v", tenantID, creds.Username, creds.SandboxMode)
	return nil
}

// parseCredentials splits the raw upload on ";" into exactly four
// positional parts: username, password, key, sandbox flag. Any other arity
// is malformed input, rejected before anything is written.
func parseCredentials(tenantID, raw string) (entities.TenantCredentials, error) {
	parts := strings.Split(raw, ";")
	if len(parts) != configParts {
		return entities.TenantCredentials{}, fmt.Errorf("%w: expected %d parts, got %d", ErrMalformedConfig, configParts, len(parts))
	}

	return entities.TenantCredentials{
		TenantID: tenantID,
		Username: parts[0],
		Password: parts[1],
		APIKey:   parts[2],
		// Matches the host's historical flag parsing: anything but a
		// case-insensitive "true" means production.
		SandboxMode: strings.EqualFold(parts[3], "true"),
	}, nil
}
