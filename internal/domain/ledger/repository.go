package ledger

import (
	"context"

	"github.com/google/uuid"
)

// TransactionRepository defines the data-access contract for
// transactions. Implementations execute every query as the
// authenticated caller, so the store's row-level security decides what
// is visible and what may be written; callers never pre-check
// membership or role.
type TransactionRepository interface {
	// Create inserts a transaction and fills in its generated ID
	Create(ctx context.Context, tx *Transaction) error

	// ListByTenant returns all transactions of a tenant visible to the
	// caller, ordered by date descending then creation time descending
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]Transaction, error)

	// AmountsByTenant returns the (type, amount) projection of all
	// transactions of a tenant visible to the caller
	AmountsByTenant(ctx context.Context, tenantID uuid.UUID) ([]TypedAmount, error)
}

// DocumentRepository defines the data-access contract for documents
type DocumentRepository interface {
	// Create inserts a document and fills in its generated ID
	Create(ctx context.Context, doc *Document) error

	// ListByTransaction returns all documents of a transaction visible
	// to the caller, ordered by creation time descending
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]Document, error)
}

// TenantRepository defines the data-access contract for tenants
type TenantRepository interface {
	// CreateWithMembership atomically creates a tenant and the
	// caller's write membership in it. A tenant must never exist
	// without its creator's membership, so this is one store call, not
	// two.
	CreateWithMembership(ctx context.Context, name string) (uuid.UUID, error)
}
