package handler

import (
	"errors"
	"net/http"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/repository"
	"TravelCompanion-App/internal/domain/service"
	"TravelCompanion-App/internal/logging"

	"github.com/gin-gonic/gin"
)

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// respondError はエラーの種類に応じたステータスコードでレスポンスを返す
func respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"field":   validationErr.Field,
			"message": validationErr.Message,
		})
	case errors.Is(err, model.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_coordinate",
			"message": err.Error(),
		})
	case errors.Is(err, repository.ErrRecommendationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "session_not_found",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "empty_message",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrSessionCollapsed):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "session_collapsed",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrMessageLimit):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "message_limit",
			"message": err.Error(),
		})
	default:
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("❌ リクエストの処理に失敗")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}
