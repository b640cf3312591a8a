package handler

import (
	"time"

	"TravelCompanion-App/internal/logging"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger はリクエストIDを付与し、処理結果をzerologで出力するミドルウェア
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		c.Header(requestIDHeader, requestID)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()

		logging.Ctx(c.Request.Context()).Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
