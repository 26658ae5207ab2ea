package handler

import (
	"errors"
	"net/http"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/bookkeep/backend/internal/interfaces/http/dto"
	"github.com/bookkeep/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Created sends a 201 created response with the given payload
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends a 200 response with the given payload
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response, deriving the status code from the error code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message))
}

// HandleDomainError maps a service error onto its HTTP representation.
// Errors outside the domain taxonomy are reported as internal without
// leaking their detail.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, domainErr.Code, domainErr.Message)
		return
	}
	h.Error(c, shared.CodeInternal, "Internal server error")
}

// BindJSON binds the request body and, on failure, writes the 400
// validation response. Returns false when binding failed.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if details := middleware.FormatValidationErrors(err); len(details) > 0 {
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", details))
			return false
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(shared.CodeInvalidInput, "Invalid request body"))
		return false
	}
	return true
}

// badQuery writes the 400 response for a failed query binding
func (h *BaseHandler) badQuery(c *gin.Context, err error) {
	if details := middleware.FormatValidationErrors(err); len(details) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Validation failed", details))
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(shared.CodeInvalidInput, "Invalid query parameters"))
}

// queryUUID parses a query parameter already validated as a UUID
func queryUUID(value string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil
	}
	return id
}
