package handler

import (
	ledgerapp "github.com/bookkeep/backend/internal/application/ledger"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// TenantHandler handles tenant provisioning endpoints
type TenantHandler struct {
	BaseHandler
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler() *TenantHandler {
	return &TenantHandler{}
}

// RegisterRoutes registers tenant routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tenants", h.Create)
}

// Create provisions a tenant and grants the caller a write membership
func (h *TenantHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	svc := ledgerapp.NewTenantService(middleware.GetScopedClient(c).Tenants())
	id, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, ledgerapp.CreatedResponse{ID: id.String()})
}
