package persistence

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository is the caller-scoped implementation of
// ledger.TransactionRepository. Tenant isolation and role enforcement
// happen in the store's policies, not here; queries still filter by
// tenant because that is the lookup key, not an access check.
type transactionRepository struct {
	scope *ScopedClient
}

// Create inserts a transaction; the store fills in the generated ID
// and creation timestamp.
func (r *transactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	return r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.Create(t).Error
	})
}

// ListByTenant returns the tenant's transactions ordered by date
// descending with creation time descending as the stable tie-breaker
// for same-day entries.
func (r *transactionRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]ledger.Transaction, error) {
	rows := make([]ledger.Transaction, 0)
	err := r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.
			Where("tenant_id = ?", tenantID).
			Order("date DESC").
			Order("created_at DESC").
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AmountsByTenant fetches only the (type, amount) projection used by
// the summary aggregation.
func (r *transactionRepository) AmountsByTenant(ctx context.Context, tenantID uuid.UUID) ([]ledger.TypedAmount, error) {
	rows := make([]ledger.TypedAmount, 0)
	err := r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.
			Model(&ledger.Transaction{}).
			Select("type", "amount").
			Where("tenant_id = ?", tenantID).
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
