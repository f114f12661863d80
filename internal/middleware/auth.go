package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/authz"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

const ContextIdentity = "identity"

// AuthMiddleware verifies the bearer token and stores the caller's identity
// in the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authorization header is required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Authorization header must be a Bearer token.")
			return
		}

		id, err := auth.Parse(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Invalid or expired token.")
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Require(Identity(c), roles...); err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated caller, or the zero Identity on public
// routes.
func Identity(c *gin.Context) authz.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return authz.Identity{}
	}
	id, _ := v.(authz.Identity)
	return id
}
