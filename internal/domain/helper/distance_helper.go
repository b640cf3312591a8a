package helper

import (
	"TravelCompanion-App/internal/domain/model"
	"math"
	"sort"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大円距離を計算する (km)
func HaversineDistance(p1, p2 model.Coordinate) float64 {
	lat1 := p1.Latitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	dLat := (p2.Latitude - p1.Latitude) * math.Pi / 180
	dLng := (p2.Longitude - p1.Longitude) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// 丸め誤差で1を超えるとNaNになる
	a = math.Min(a, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FilterByCategory は指定されたカテゴリのスポットのみを抽出する（大文字小文字は区別しない）
func FilterByCategory(recs []model.Recommendation, category string) []model.Recommendation {
	filtered := make([]model.Recommendation, 0, len(recs))
	for _, r := range recs {
		if strings.EqualFold(r.Category, category) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortPresentedByDistance は距離の近い順に並べ替える
// 距離が不明なスポットは末尾に置き、同じ距離のものは元の順序を保つ
func SortPresentedByDistance(items []model.PresentedRecommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].DistanceKm, items[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
}
