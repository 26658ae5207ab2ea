package ledger

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// SummaryService computes a tenant's financial summary on demand.
type SummaryService struct {
	repo ledger.TransactionRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(repo ledger.TransactionRepository) *SummaryService {
	return &SummaryService{repo: repo}
}

// Summarize fetches the tenant's (type, amount) pairs and reduces them
// to totals. A caller with no membership sees an empty set and gets
// all-zero totals; repeated calls with no intervening writes return
// identical results.
func (s *SummaryService) Summarize(ctx context.Context, tenantID uuid.UUID) (SummaryResponse, error) {
	rows, err := s.repo.AmountsByTenant(ctx, tenantID)
	if err != nil {
		return SummaryResponse{}, err
	}

	summary := ledger.Summarize(rows)
	return SummaryResponse{
		TotalIncome:  summary.TotalIncome.InexactFloat64(),
		TotalExpense: summary.TotalExpense.InexactFloat64(),
		Balance:      summary.Balance.InexactFloat64(),
	}, nil
}
