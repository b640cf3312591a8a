package handler

import (
	"net/http"

	"TravelCompanion-App/internal/domain/model"
	"TravelCompanion-App/internal/domain/service"

	"github.com/gin-gonic/gin"
)

// WeatherHandler は天気APIのハンドラー
type WeatherHandler struct {
	simulator service.WeatherSimulator
}

// NewWeatherHandler は新しいWeatherHandlerインスタンスを作成
func NewWeatherHandler(simulator service.WeatherSimulator) *WeatherHandler {
	return &WeatherHandler{
		simulator: simulator,
	}
}

// GetCurrentWeather GET /weather - 現在の天気を取得（lat/lonが揃っていない場合は既定の天気）
func (h *WeatherHandler) GetCurrentWeather(c *gin.Context) {
	lat, err := parseOptionalFloat(c, "lat")
	if err != nil {
		respondError(c, err)
		return
	}
	lon, err := parseOptionalFloat(c, "lon")
	if err != nil {
		respondError(c, err)
		return
	}

	if lat != nil && lon != nil {
		if err := (model.Coordinate{Latitude: *lat, Longitude: *lon}).Validate(); err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, h.simulator.CurrentWeather(lat, lon))
}
