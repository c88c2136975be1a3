package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/repository"
)

var ErrInvalidInput = errors.New("bad request")

// respondError maps domain errors to status codes in one place. Anything
// unclassified is a 500 and gets logged with the request id.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrWineNotFound),
		errors.Is(err, repository.ErrProducerNotFound),
		errors.Is(err, repository.ErrAssessmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrInvalidQuantity),
		errors.Is(err, repository.ErrInvalidEventType),
		errors.Is(err, ErrInvalidInput):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Any("request_id", c.Value("request_id")), zap.Error(err))
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
