package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "TravelCompanion-App"

// NewRouter はAPIのルーティングを設定したgin.Engineを作成する
func NewRouter(recommendations *RecommendationHandler, weather *WeatherHandler, assistant *AssistantHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})

	r.GET("/recommendations", recommendations.ListRecommendations)
	r.POST("/recommendations/present", recommendations.PresentRecommendations)
	r.GET("/recommendations/:id", recommendations.GetRecommendation)

	r.GET("/weather", weather.GetCurrentWeather)

	sessions := r.Group("/assistant/sessions")
	{
		sessions.POST("", assistant.CreateSession)
		sessions.GET("/:id", assistant.GetSession)
		sessions.POST("/:id/expand", assistant.Expand)
		sessions.POST("/:id/collapse", assistant.Collapse)
		sessions.POST("/:id/toggle", assistant.Toggle)
		sessions.POST("/:id/messages", assistant.SendMessage)
	}

	return r
}
