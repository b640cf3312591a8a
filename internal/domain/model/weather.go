package model

// WeatherCondition 天気の種類
type WeatherCondition string

const (
	WeatherClear  WeatherCondition = "clear"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRain   WeatherCondition = "rain"
	WeatherSnow   WeatherCondition = "snow"
	WeatherStorm  WeatherCondition = "storm"
	WeatherWindy  WeatherCondition = "windy"
)

// Weather 現在の天気
type Weather struct {
	Temperature int              `json:"temperature"` // 気温（摂氏）
	Condition   WeatherCondition `json:"condition"`
	Description string           `json:"description"`
}

// WeatherConditions 全ての天気の種類を取得する（順序は固定）
func WeatherConditions() []WeatherCondition {
	return []WeatherCondition{
		WeatherClear,
		WeatherCloudy,
		WeatherRain,
		WeatherSnow,
		WeatherStorm,
		WeatherWindy,
	}
}

// Description 天気の種類から説明文を取得する
func (c WeatherCondition) Description() string {
	switch c {
	case WeatherCloudy:
		return "Partly cloudy"
	case WeatherRain:
		return "Light rain"
	case WeatherSnow:
		return "Light snow"
	case WeatherStorm:
		return "Thunderstorm"
	case WeatherWindy:
		return "Strong winds"
	default:
		return "Sunny day"
	}
}

// DefaultWeather 位置情報がない場合に返す天気
func DefaultWeather() Weather {
	return Weather{
		Temperature: 25,
		Condition:   WeatherClear,
		Description: WeatherClear.Description(),
	}
}
