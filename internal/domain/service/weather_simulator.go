package service

import (
	"TravelCompanion-App/internal/domain/model"
	"math/rand/v2"
	"sync"
)

// RandomSource は天気の生成に使う乱数源（*rand.Rand が満たす）
type RandomSource interface {
	IntN(n int) int
}

// WeatherSimulator は外部APIを使わずに現在の天気を生成する
type WeatherSimulator interface {
	// CurrentWeather は緯度経度の両方が指定された場合にランダムな天気を返し、それ以外は既定の天気を返す
	CurrentWeather(lat, lon *float64) model.Weather
}

type weatherSimulator struct {
	mu  sync.Mutex
	rng RandomSource
}

// NewWeatherSimulator は新しいWeatherSimulatorを作成する
func NewWeatherSimulator(rng RandomSource) WeatherSimulator {
	return &weatherSimulator{
		rng: rng,
	}
}

// NewSeededWeatherSimulator はシード値から再現可能なWeatherSimulatorを作成する
func NewSeededWeatherSimulator(seed uint64) WeatherSimulator {
	return NewWeatherSimulator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *weatherSimulator) CurrentWeather(lat, lon *float64) model.Weather {
	if lat == nil || lon == nil {
		return model.DefaultWeather()
	}

	conditions := model.WeatherConditions()

	// *rand.Rand は並行呼び出しに対して安全ではない
	s.mu.Lock()
	condition := conditions[s.rng.IntN(len(conditions))]
	temperature := s.rng.IntN(30) + 10
	s.mu.Unlock()

	return model.Weather{
		Temperature: temperature,
		Condition:   condition,
		Description: condition.Description(),
	}
}
