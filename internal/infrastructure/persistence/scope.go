package persistence

import (
	"context"
	"fmt"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/bookkeep/backend/internal/infrastructure/identity"
	"gorm.io/gorm"
)

// databaseRole is the PostgreSQL role every scoped session assumes.
// The role owns nothing and reaches data only through row-level
// security policies.
const databaseRole = "authenticated"

// ScopeFactory builds per-request scoped clients. One factory wraps the
// shared connection pool for the lifetime of the process.
type ScopeFactory struct {
	db *gorm.DB
}

// NewScopeFactory creates a factory on top of the shared database
func NewScopeFactory(db *Database) *ScopeFactory {
	return &ScopeFactory{db: db.DB}
}

// Scoped returns a client whose every operation executes as the given
// verified identity. The client carries no connection of its own; each
// operation opens a transaction, installs the caller's claims for the
// store's row-level security, runs, and commits.
func (f *ScopeFactory) Scoped(id *identity.Identity) (*ScopedClient, error) {
	claims, err := id.ClaimsJSON()
	if err != nil {
		return nil, err
	}
	return &ScopedClient{db: f.db, claimsJSON: claims}, nil
}

// ScopedClient is a data-access handle bound to one caller. It is the
// sole authorization enforcement point for data access: the application
// never evaluates membership or role itself, it only forwards queries
// and classifies what the store decides.
type ScopedClient struct {
	db         *gorm.DB
	claimsJSON string
}

// Transactions returns the caller-scoped transaction repository
func (s *ScopedClient) Transactions() ledger.TransactionRepository {
	return &transactionRepository{scope: s}
}

// Documents returns the caller-scoped document repository
func (s *ScopedClient) Documents() ledger.DocumentRepository {
	return &documentRepository{scope: s}
}

// Tenants returns the caller-scoped tenant repository
func (s *ScopedClient) Tenants() ledger.TenantRepository {
	return &tenantRepository{scope: s}
}

// run executes fn inside a transaction whose session is configured as
// the scoped caller. SET LOCAL keeps both the role switch and the
// claims bound to this transaction only; the pooled connection returns
// to its original state on commit or rollback.
func (s *ScopedClient) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL ROLE %s", databaseRole)).Error; err != nil {
			return err
		}
		if err := tx.Exec("SELECT set_config('request.jwt.claims', ?, true)", s.claimsJSON).Error; err != nil {
			return err
		}
		return fn(tx)
	})
	return classifyStoreError(err)
}
