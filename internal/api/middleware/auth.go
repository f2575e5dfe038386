package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// LoginPath is where unauthenticated requests to protected routes are sent.
const LoginPath = "/auth/login"

func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie("token"); err == nil {
		return tok
	}
	return ""
}

// RequireAuth redirects to the login surface when no valid session token is
// present. A redirect, not a 401: the flow mirrors a browser form app.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := extractToken(c)
		if tok == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		userID, err := auth.ParseToken(tok)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and proceeds
// anonymously otherwise. Public pages use it to show per-viewer state such
// as the profile follow flag.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := extractToken(c); tok != "" {
			if userID, err := auth.ParseToken(tok); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}
