package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a service error to the matching HTTP status.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		NotFound(c, err.Error())
	case apperr.KindValidation, apperr.KindIntegrity, apperr.KindInvalidTransition:
		BadRequest(c, err.Error())
	case apperr.KindUpstream:
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	default:
		ServerError(c, err)
	}
}
