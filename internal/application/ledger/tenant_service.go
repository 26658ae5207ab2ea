package ledger

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// TenantService provides application-level tenant operations.
type TenantService struct {
	repo ledger.TenantRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(repo ledger.TenantRepository) *TenantService {
	return &TenantService{repo: repo}
}

// Create makes a new tenant with the caller as its first write member.
// Tenant and membership are created by a single store call; there is no
// state in which one exists without the other.
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (uuid.UUID, error) {
	return s.repo.CreateWithMembership(ctx, req.Name)
}
