package middlewares

import (
	"strings"

	"tenant-admin-api/internal/apperrors"
	"tenant-admin-api/internal/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

var (
	errNotAuthenticated = apperrors.Unauthorized("Not authenticated")
	errAdminRequired    = apperrors.Forbidden("Admin access required")
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware requires "Authorization: Bearer <token>" and stores the
// verified claims on the context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			apperrors.Respond(c, nil, errNotAuthenticated)
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			apperrors.Respond(c, nil, err)
			return
		}

		c.Set(claimsKey, claims)
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Subject)
		c.Next()
	}
}

func IsAdmin(claims *auth.Claims) bool {
	return claims != nil && claims.Role == auth.RoleAdmin
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := GetClaims(c)
		if !IsAdmin(claims) {
			apperrors.Respond(c, nil, errAdminRequired)
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
