package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steve-ongera/AgriLink/pkg/apperr"
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
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
}

// Error maps a service error onto the envelope using the apperr taxonomy.
func Error(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	var nf *apperr.NotFoundError
	var cf *apperr.ConflictError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Msg)
	case errors.As(err, &nf):
		NotFound(c, nf.Error())
	case errors.As(err, &cf):
		Conflict(c, cf.Msg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "not found")
	default:
		ServerError(c, err)
	}
}
