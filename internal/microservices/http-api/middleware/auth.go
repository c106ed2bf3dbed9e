package middleware

import (
	"net/http"
	"strings"

	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	// AccessTokenCookie carries the access token for browser clients
	AccessTokenCookie = "access_token"

	ContextUserID   = "userID"
	ContextUsername = "username"

	loginPath = "/"
)

// RequireViewer is a Gin middleware for JWT authentication.
// The token comes from the Authorization header ("Bearer <token>") or, for
// browsers, from the access_token cookie. Unauthenticated API clients get
// 401; everyone else is redirected to the login page.
func RequireViewer(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			rejectViewer(c, "missing authorization")
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			rejectViewer(c, "invalid token")
			return
		}

		// Set user info in context for handlers to use
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

func rejectViewer(c *gin.Context, reason string) {
	if WantsJSON(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": reason})
		return
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// WantsJSON reports whether the client asked for a JSON response.
func WantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ")
}

// ViewerID returns the authenticated user's id set by RequireViewer.
func ViewerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
