package ledger

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService provides application-level transaction operations.
// It is constructed per request around the caller-scoped repository, so
// every store call it makes executes as the authenticated caller.
type TransactionService struct {
	repo ledger.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(repo ledger.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

// Create records a transaction on behalf of the caller. Whether the
// caller holds the write role in the tenant is decided by the store;
// a denial surfaces as a FORBIDDEN domain error.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return uuid.Nil, shared.InvalidInput("Invalid tenantId format")
	}
	tx := &ledger.Transaction{
		TenantID:    tenantID,
		Type:        ledger.TransactionType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        ledger.Date(req.Date),
		Category:    req.Category,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return uuid.Nil, err
	}
	return tx.ID, nil
}

// List returns the tenant's transactions visible to the caller, newest
// date first. An empty result is not an error: a caller with no
// membership simply sees nothing (or a policy denial, depending on the
// store's policies).
func (s *TransactionService) List(ctx context.Context, tenantID uuid.UUID) (TransactionListResponse, error) {
	rows, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return TransactionListResponse{}, err
	}
	return TransactionListResponse{Transactions: rows}, nil
}
