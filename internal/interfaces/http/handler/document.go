package handler

import (
	ledgerapp "github.com/bookkeep/backend/internal/application/ledger"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document attachment API endpoints
type DocumentHandler struct {
	BaseHandler
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

// RegisterRoutes registers document routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	documents := rg.Group("/documents")
	{
		documents.POST("", h.Create)
		documents.GET("", h.List)
	}
}

// Create attaches a document reference to a transaction
func (h *DocumentHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateDocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	svc := ledgerapp.NewDocumentService(middleware.GetScopedClient(c).Documents())
	id, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ledgerapp.CreatedResponse{ID: id.String()})
}

// List returns the documents attached to a transaction
func (h *DocumentHandler) List(c *gin.Context) {
	var q ledgerapp.ListDocumentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badQuery(c, err)
		return
	}

	svc := ledgerapp.NewDocumentService(middleware.GetScopedClient(c).Documents())
	resp, err := svc.List(c.Request.Context(), queryUUID(q.TransactionID))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}
