package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/otpauthsvc/domain"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := tokenParts[1]

		claims, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			}
			c.Abort()
			return
		}

		// The session backs the token; a deleted or expired session
		// invalidates an otherwise well-formed token.
		if claims.SessionID != "" {
			session, err := sessionRepo.FindByID(c.Request.Context(), claims.SessionID)
			if err != nil || session == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session invalid or expired"})
				c.Abort()
				return
			}

			if session.IdentityID != claims.IdentityID {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session identity mismatch"})
				c.Abort()
				return
			}
		}

		c.Set("identity_id", claims.IdentityID)
		if claims.SessionID != "" {
			c.Set("session_id", claims.SessionID)
		}

		c.Next()
	})
}
