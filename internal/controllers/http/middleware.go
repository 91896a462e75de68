package http

import (
	"net/http"
	"strings"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// AuthRequired extracts and verifies the bearer token, making the caller's
// claims available to downstream handlers.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": domain.KindUnauthorized, "message": "not authorized, no token"},
			})
			return
		}

		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": domain.KindUnauthorized, "message": "not authorized, token failed"},
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminRequired gates a route to admin callers. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil || claims.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": domain.KindForbidden, "message": "not authorized to access this route"},
			})
			return
		}
		c.Next()
	}
}

func currentClaims(c *gin.Context) *services.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.Claims)
	return claims
}
