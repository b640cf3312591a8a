package model

import "strings"

// TransportMode 移動手段
type TransportMode string

const (
	TransportDriving TransportMode = "driving"
	TransportCycling TransportMode = "cycling"
	TransportWalking TransportMode = "walking"
	// TransportUnknown 未知の移動手段（補正なしとして扱う）
	TransportUnknown TransportMode = "unknown"
)

// transportModeAliases 受け付ける表記から移動手段へのマッピング
var transportModeAliases = map[string]TransportMode{
	"driving":         TransportDriving,
	"driving-car":     TransportDriving,
	"cycling":         TransportCycling,
	"cycling-regular": TransportCycling,
	"cycling-road":    TransportCycling,
	"walking":         TransportWalking,
	"foot-walking":    TransportWalking,
}

// ParseTransportMode 文字列から移動手段を取得する。未知の値はエラーにせずTransportUnknownを返す
func ParseTransportMode(s string) TransportMode {
	if mode, ok := transportModeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return mode
	}
	return TransportUnknown
}

// Multiplier 直線距離に対する実移動距離の補正係数
func (m TransportMode) Multiplier() float64 {
	switch m {
	case TransportDriving:
		return 1.0
	case TransportCycling:
		return 1.2
	case TransportWalking:
		return 1.5
	default:
		return 1.0
	}
}

// SpeedKmh ETA推定に使う移動手段ごとの平均速度 (km/h)
func (m TransportMode) SpeedKmh() float64 {
	switch m {
	case TransportCycling:
		return 15
	case TransportWalking:
		return 5
	default:
		// 自動車と未知の移動手段は同じ速度
		return 40
	}
}

// IsKnown 既知の移動手段かどうか
func (m TransportMode) IsKnown() bool {
	return m == TransportDriving || m == TransportCycling || m == TransportWalking
}
