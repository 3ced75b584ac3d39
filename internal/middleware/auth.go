package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/pkg/jwt"
)

const sessionCookieName = "admin_token"

// AdminAuth guards the admin routes. The session token is accepted from
// the Authorization header (Bearer) or the admin_token cookie, so both
// API clients and the browser-based panel can pass.
func AdminAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "Authentifizierung erforderlich", nil)
			c.Abort()
			return
		}

		claims, err := manager.Verify(token)
		if err != nil {
			message := "Ungültige Sitzung"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "Sitzung abgelaufen, bitte erneut anmelden"
			}
			common.ErrorResponse(c, http.StatusUnauthorized, message, nil)
			c.Abort()
			return
		}

		c.Set("admin_role", claims.Role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}
