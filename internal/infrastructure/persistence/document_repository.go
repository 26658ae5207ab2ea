package persistence

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRepository is the caller-scoped implementation of
// ledger.DocumentRepository. Whether the caller may see or attach
// documents cascades from the parent transaction's tenant policies in
// the store.
type documentRepository struct {
	scope *ScopedClient
}

// Create inserts a document referencing an existing transaction
func (r *documentRepository) Create(ctx context.Context, doc *ledger.Document) error {
	return r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.Create(doc).Error
	})
}

// ListByTransaction returns the transaction's documents ordered by
// creation time descending.
func (r *documentRepository) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]ledger.Document, error) {
	rows := make([]ledger.Document, 0)
	err := r.scope.run(ctx, func(tx *gorm.DB) error {
		return tx.
			Where("transaction_id = ?", transactionID).
			Order("created_at DESC").
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
