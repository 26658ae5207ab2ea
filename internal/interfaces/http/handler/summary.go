package handler

import (
	ledgerapp "github.com/bookkeep/backend/internal/application/ledger"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// SummaryHandler handles the financial summary endpoint
type SummaryHandler struct {
	BaseHandler
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// RegisterRoutes registers summary routes
func (h *SummaryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.Get)
}

// Get computes a tenant's income, expense and balance totals
func (h *SummaryHandler) Get(c *gin.Context) {
	var q ledgerapp.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return
	}

	svc := ledgerapp.NewSummaryService(middleware.GetScopedClient(c).Transactions())
	summary, err := svc.Summarize(c.Request.Context(), queryUUID(q.TenantID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, summary)
}
