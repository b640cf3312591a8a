package repository

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"

	"TravelCompanion-App/internal/domain/model"
)

// GeoPoint PostGIS POINT 型の JSON 表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// CoordinateToGeoPoint model.Coordinate を PostGIS POINT 形式に変換
func CoordinateToGeoPoint(c model.Coordinate) *GeoPoint {
	point := c.Point()
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToCoordinate PostGIS POINT を model.Coordinate に変換
func GeoPointToCoordinate(geoPoint *GeoPoint) (model.Coordinate, error) {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return model.Coordinate{}, fmt.Errorf("%w: 位置情報がありません", model.ErrInvalidCoordinate)
	}
	if geoPoint.Type != "" && geoPoint.Type != "Point" {
		return model.Coordinate{}, fmt.Errorf("%w: 未対応のジオメトリ型 %s", model.ErrInvalidCoordinate, geoPoint.Type)
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}
	return model.CoordinateFromPoint(point), nil
}

// parseGeoPointJSON JSONB文字列の位置情報を model.Coordinate に変換
func parseGeoPointJSON(raw []byte) (model.Coordinate, error) {
	var geoPoint GeoPoint
	if err := json.Unmarshal(raw, &geoPoint); err != nil {
		return model.Coordinate{}, fmt.Errorf("location JSONBパースエラー: %w", err)
	}
	return GeoPointToCoordinate(&geoPoint)
}

// validateRecommendations 位置情報が不正なスポットを含む場合はエラーを返す
func validateRecommendations(recs []model.Recommendation) error {
	seen := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		if r.ID == "" {
			return fmt.Errorf("IDが空のスポットがあります (%s)", r.Name)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("スポットID %s が重複しています", r.ID)
		}
		seen[r.ID] = struct{}{}

		if err := r.Location.Validate(); err != nil {
			return fmt.Errorf("スポット %s の位置情報が不正です: %w", r.ID, err)
		}
	}
	return nil
}
