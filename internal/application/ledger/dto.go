package ledger

import (
	"strings"

	"github.com/bookkeep/backend/internal/domain/ledger"
	"github.com/bookkeep/backend/internal/domain/shared"
)

// CreateTransactionRequest represents a request to record an income or
// expense entry. Field rules mirror the store schema: the binding tags
// are the validation contract and run before any store access.
type CreateTransactionRequest struct {
	TenantID    string  `json:"tenantId" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string  `json:"category" binding:"required"`
}

// CreateDocumentRequest represents a request to attach a file reference
// to a transaction.
type CreateDocumentRequest struct {
	TransactionID string `json:"transactionId" binding:"required,uuid"`
	FileURL       string `json:"fileUrl" binding:"required,http_url"`
}

// ValidateFileURL rejects local-file URLs explicitly, on top of the
// http_url binding tag. The scheme allow-list already excludes file://,
// but the dangerous case is cheap to rule out directly and that makes
// the policy obvious to a reader.
func (r CreateDocumentRequest) ValidateFileURL() error {
	url := strings.TrimSpace(r.FileURL)
	if strings.HasPrefix(url, "file://") {
		return shared.InvalidInput("Local file URLs (file://) are not allowed. Please use an HTTP or HTTPS URL.")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return shared.InvalidInput("URL must start with http:// or https://")
	}
	return nil
}

// CreateTenantRequest represents a request to create a tenant. The
// caller becomes its first member with the write role.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatedResponse carries the generated ID of a newly created resource
type CreatedResponse struct {
	ID string `json:"id"`
}

// TransactionListResponse wraps a tenant's transactions
type TransactionListResponse struct {
	Transactions []ledger.Transaction `json:"transactions"`
}

// DocumentListResponse wraps a transaction's documents
type DocumentListResponse struct {
	Documents []ledger.Document `json:"documents"`
}

// SummaryResponse carries the derived totals of one tenant. Amounts are
// plain JSON numbers; formatting for display is the caller's concern.
type SummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// ListTransactionsQuery selects the tenant whose transactions to list
type ListTransactionsQuery struct {
	TenantID string `form:"tenantId" binding:"required,uuid"`
}

// ListDocumentsQuery selects the transaction whose documents to list
type ListDocumentsQuery struct {
	TransactionID string `form:"transactionId" binding:"required,uuid"`
}

// SummaryQuery selects the tenant to summarize
type SummaryQuery struct {
	TenantID string `form:"tenantId" binding:"required,uuid"`
}
