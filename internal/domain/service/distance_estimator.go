package service

import (
	"TravelCompanion-App/internal/domain/helper"
	"TravelCompanion-App/internal/domain/model"
	"math"
	"time"
)

// DistanceEstimator は2地点間の実移動距離と所要時間を推定する
type DistanceEstimator interface {
	// Estimate は大円距離に移動手段ごとの補正係数を掛けた距離(km)を返す
	Estimate(origin, destination model.Coordinate, mode model.TransportMode) float64
	// EstimateDuration は補正済みの距離から所要時間を推定する
	EstimateDuration(distanceKm float64, mode model.TransportMode) time.Duration
}

type haversineEstimator struct{}

// NewDistanceEstimator は新しいDistanceEstimatorを作成する
func NewDistanceEstimator() DistanceEstimator {
	return haversineEstimator{}
}

// Estimate は常に0以上の有限値を返す。同一地点の場合は0
// 対蹠点付近の精度低下は考慮しない（推薦対象は100km未満の近距離のため）
func (haversineEstimator) Estimate(origin, destination model.Coordinate, mode model.TransportMode) float64 {
	return helper.HaversineDistance(origin, destination) * mode.Multiplier()
}

func (haversineEstimator) EstimateDuration(distanceKm float64, mode model.TransportMode) time.Duration {
	if distanceKm <= 0 {
		return 0
	}
	hours := distanceKm / mode.SpeedKmh()
	return time.Duration(hours * float64(time.Hour))
}

// etaMinutes は所要時間を分単位に切り上げる
func etaMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}
