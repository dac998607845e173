package authentication

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/22Vinith/Hospital-Management/models"
)

// Context keys set by AuthRequired and read by RoleRequired and the
// controllers.
const (
	PrincipalKey   = "principal"
	PrincipalIDKey = "principalID"
	RoleKey        = "principalRole"
)

// PrincipalFinder loads the principal for an id with the password field
// cleared. Returning models.ErrNotFound means the principal was deleted
// after the token was issued.
type PrincipalFinder func(ctx context.Context, id uint) (interface{}, error)

// AuthRequired authenticates the bearer token against the given
// (role, purpose) secret, resolves the principal and attaches it to the
// request context. One instance exists per (role, purpose) pair.
func AuthRequired(tokens *TokenService, role Role, purpose Purpose, find PrincipalFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "Authorization token is required",
			})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		principalID, err := tokens.Verify(role, purpose, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid or expired token",
			})
			return
		}

		principal, err := find(c.Request.Context(), principalID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code":    http.StatusUnauthorized,
					"message": "User not found",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Internal server error",
			})
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(PrincipalIDKey, principalID)
		c.Set(RoleKey, string(role))
		c.Next()
	}
}

// RoleRequired authorizes the already-authenticated principal against
// the allowed role set. Running without a prior AuthRequired is a
// checked failure, not a panic.
func RoleRequired(allowedRoles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(RoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": models.ErrUnauthenticated.Error(),
			})
			return
		}
		role, ok := value.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": models.ErrUnauthenticated.Error(),
			})
			return
		}

		for _, allowed := range allowedRoles {
			if role == string(allowed) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    http.StatusForbidden,
			"message": "Access denied. You do not have the required role to access this resource.",
		})
	}
}

// PrincipalID returns the authenticated principal id from the context.
func PrincipalID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(PrincipalIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
