package middleware

import (
	"strings"

	"aacboard-backend/internal/shared/response"
	"aacboard-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionID is where the gate stores the authorized session id
	ContextSessionID = "sessionID"

	// ContextSessionPageID is the page the session was opened against
	ContextSessionPageID = "sessionPageID"
)

// SessionGuard admits only requests carrying a live edit-session token.
// The token's own exp mirrors the session deadline, so an expired
// session is rejected here without consulting the registry; the
// service still re-checks lazily for the in-between cases.
func SessionGuard(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired session token")
			c.Abort()
			return
		}

		// On session subroutes the token must belong to the session
		// named in the path.
		if id := c.Param("id"); id != "" && id != claims.SessionID {
			response.Unauthorized(c, "token does not match session")
			c.Abort()
			return
		}

		c.Set(ContextSessionID, claims.SessionID)
		c.Set(ContextSessionPageID, claims.PageID)
		c.Next()
	}
}
