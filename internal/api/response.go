package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mealfinder/backend/internal/apperror"
)

// respondError maps an error's classification to an HTTP status and
// writes the error envelope. Unclassified errors never leak details.
func respondError(c *gin.Context, err error) {
	msg := err.Error()
	var status int

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindAuth:
		status = http.StatusUnauthorized
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	case apperror.KindUpstream:
		status = http.StatusInternalServerError
	default:
		status = http.StatusInternalServerError
		log.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
		msg = "internal server error"
	}

	c.JSON(status, gin.H{"error": msg})
}
