package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/bookkeep/backend/internal/infrastructure/identity"
	"github.com/bookkeep/backend/internal/infrastructure/logger"
	"github.com/bookkeep/backend/internal/infrastructure/persistence"
	"github.com/bookkeep/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth context keys
const (
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
	AuthUserIDKey   = "auth_user_id"
	ScopedClientKey = "auth_scoped_client"
)

// AuthGateConfig holds the collaborators of the auth gate
type AuthGateConfig struct {
	// Verifier checks bearer tokens against the identity provider
	Verifier identity.Verifier
	// Scopes builds caller-scoped store clients
	Scopes *persistence.ScopeFactory
	// Logger for middleware logging
	Logger *zap.Logger
}

// AuthGate authenticates every request on its group. On success it
// attaches the verified user ID and a caller-scoped store client to the
// context; otherwise it short-circuits:
//
//	missing/malformed header, empty token, rejected token  -> 401
//	identity provider not configured                        -> 500
//	anything unexpected while authenticating                -> 401
//
// Verification is attempted exactly once per request, with no retries
// and no caching.
func AuthGate(cfg AuthGateConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// An unexpected panic while authenticating must read as a
		// failed authentication, not as a server fault.
		defer func() {
			if r := recover(); r != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("Panic during authentication",
						zap.Any("error", r),
						zap.String("path", c.Request.URL.Path),
					)
				}
				abortUnauthenticated(c, "Authentication failed")
			}
		}()

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthenticated(c, "Missing or invalid authorization header")
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		if strings.TrimSpace(token) == "" {
			abortUnauthenticated(c, "Empty token")
			return
		}

		id, err := cfg.Verifier.Verify(c.Request.Context(), token)
		if err != nil {
			handleVerifyError(c, cfg, err)
			return
		}

		client, err := cfg.Scopes.Scoped(id)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to build scoped client", zap.Error(err))
			}
			abortUnauthenticated(c, "Authentication failed")
			return
		}

		c.Set(AuthUserIDKey, id.UserID)
		c.Set(ScopedClientKey, client)

		// Thread the identity into the request context for the logger
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, id.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// handleVerifyError maps a verification failure to a response. A
// provider that is missing from the configuration is the operator's
// fault and answers 500; everything else, including a provider that is
// unreachable, answers 401 with the reason the caller may act on.
func handleVerifyError(c *gin.Context, cfg AuthGateConfig, err error) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Token verification failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
	}

	if errors.Is(err, identity.ErrNotConfigured) {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(shared.CodeConfiguration,
				"Server configuration error: "+err.Error()))
		return
	}

	abortUnauthenticated(c, err.Error())
}

// abortUnauthenticated short-circuits the request with a 401
func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(shared.CodeUnauthenticated, message))
}

// GetUserID retrieves the verified user ID from gin.Context
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(AuthUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetScopedClient retrieves the caller-scoped store client from
// gin.Context. It is nil on routes not behind the auth gate.
func GetScopedClient(c *gin.Context) *persistence.ScopedClient {
	if client, exists := c.Get(ScopedClientKey); exists {
		if sc, ok := client.(*persistence.ScopedClient); ok {
			return sc
		}
	}
	return nil
}
