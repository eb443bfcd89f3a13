package api

import (
	"errors"
	"net/http"
	"strconv"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindCapacityViolation, apperr.KindOccupied:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse - body of every failed request
type errorResponse struct {
	Error string      `json:"error"`
	Code  apperr.Kind `json:"code"`
}

func respondError(c *gin.Context, err error) {
	RespondErrorStatus(c, StatusFor(apperr.KindOf(err)), err)
}

// RespondErrorStatus writes the error body with an explicit status, for
// failures whose status does not follow from their kind.
func RespondErrorStatus(c *gin.Context, status int, err error) {
	kind := apperr.KindOf(err)
	entry := logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
		"kind":   kind,
	})
	if kind == apperr.KindStore {
		entry.Error(err.Error())
	} else {
		metrics.Rejections.WithLabelValues(string(kind)).Inc()
		entry.Warn(err.Error())
	}
	c.JSON(status, errorResponse{Error: err.Error(), Code: kind})
}

func badRequest(c *gin.Context, err error) {
	respondError(c, apperr.Validation("invalid request body: %v", err))
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, apperr.Validation("invalid ID %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

var errNoPhotoStorage = errors.New("photo storage is not configured")
