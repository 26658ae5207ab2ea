package ledger

import (
	"context"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentService provides application-level document operations,
// constructed per request around the caller-scoped repository.
type DocumentService struct {
	repo ledger.DocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(repo ledger.DocumentRepository) *DocumentService {
	return &DocumentService{repo: repo}
}

// Create attaches a file reference to a transaction. The reference must
// point at an existing transaction the caller may write to; both checks
// live in the store (foreign key and policy), and their failures come
// back as STORE_ERROR and FORBIDDEN respectively.
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (uuid.UUID, error) {
	if err := req.ValidateFileURL(); err != nil {
		return uuid.Nil, err
	}
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return uuid.Nil, shared.InvalidInput("Invalid transactionId format")
	}

	doc := &ledger.Document{
		TransactionID: transactionID,
		FileURL:       req.FileURL,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return uuid.Nil, err
	}
	return doc.ID, nil
}

// List returns the transaction's documents visible to the caller,
// newest first.
func (s *DocumentService) List(ctx context.Context, transactionID uuid.UUID) (DocumentListResponse, error) {
	rows, err := s.repo.ListByTransaction(ctx, transactionID)
	if err != nil {
		return DocumentListResponse{}, err
	}
	return DocumentListResponse{Documents: rows}, nil
}
