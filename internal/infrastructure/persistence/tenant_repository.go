package persistence

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tenantRepository is the caller-scoped implementation of
// ledger.TenantRepository.
type tenantRepository struct {
	scope *ScopedClient
}

// CreateWithMembership calls the store function that inserts the tenant
// and the creator's write membership in one statement. The function is
// all-or-nothing on the store side, so a tenant can never exist without
// its creator's membership. The driver delivers the function's uuid
// result as text, so it is scanned into a string and parsed.
func (r *tenantRepository) CreateWithMembership(ctx context.Context, name string) (uuid.UUID, error) {
	var raw string
	err := r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.Raw("SELECT create_tenant_and_join(?)", name).Scan(&raw).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.StoreError("store returned a malformed tenant id")
	}
	return id, nil
}
