package http

import (
	"errors"
	"log"
	"net/http"

	"ecommerce-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps a domain error kind to an HTTP status and writes the
// error envelope. Internal detail never reaches the client.
func respondError(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": domain.KindInternal, "message": "Internal Server Error"},
		})
		return
	}

	c.JSON(statusForKind(de.Kind), gin.H{
		"success": false,
		"error":   gin.H{"code": de.Kind, "message": de.Message},
	})
}

func statusForKind(kind string) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidArgument, domain.KindInsufficientStock, domain.KindCartEmpty, domain.KindDuplicateField:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   gin.H{"code": domain.KindInvalidArgument, "message": err.Error()},
	})
}
