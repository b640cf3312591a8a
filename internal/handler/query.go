package handler

import (
	"strconv"
	"strings"

	"TravelCompanion-App/internal/domain/model"

	"github.com/gin-gonic/gin"
)

// parseOptionalFloat はクエリパラメータを数値として解析する。未指定の場合はnil
func parseOptionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Field: key, Message: "数値で指定してください"}
	}
	return &v, nil
}

// parseOriginQuery はlat/lonクエリから現在地を取得する
// 両方未指定の場合はnil（現在地不明）、片方のみの場合はエラー
func parseOriginQuery(c *gin.Context) (*model.Coordinate, error) {
	lat, err := parseOptionalFloat(c, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := parseOptionalFloat(c, "lon")
	if err != nil {
		return nil, err
	}

	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil:
		return nil, &ValidationError{Field: "lat", Message: "lonを指定する場合はlatも必要です"}
	case lon == nil:
		return nil, &ValidationError{Field: "lon", Message: "latを指定する場合はlonも必要です"}
	}

	origin := &model.Coordinate{Latitude: *lat, Longitude: *lon}
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	return origin, nil
}
