package handler

import (
	ledgerapp "github.com/bookkeep/backend/internal/application/ledger"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction API endpoints
type TransactionHandler struct {
	BaseHandler
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.Create)
		transactions.GET("", h.List)
	}
}

// Create records a new transaction for a tenant
func (h *TransactionHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	svc := ledgerapp.NewTransactionService(middleware.GetScopedClient(c).Transactions())
	id, err := svc.Create(c.Request.Context(), req, queryUUID(middleware.GetUserID(c)))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ledgerapp.CreatedResponse{ID: id.String()})
}

// List returns a tenant's transactions, most recent first
func (h *TransactionHandler) List(c *gin.Context) {
	var q ledgerapp.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return
	}

	svc := ledgerapp.NewTransactionService(middleware.GetScopedClient(c).Transactions())
	resp, err := svc.List(c.Request.Context(), queryUUID(q.TenantID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}
