package helper

import (
	"fmt"
	"math"
)

// FormatDistance は距離(km)を表示用の文字列に変換する
// 1km未満はメートルの整数、1km以上は小数1桁のkmで表示する。いずれも四捨五入（0.5は切り上げ）
// 単位は翻訳しない
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%dm", int64(roundHalfUp(distanceKm*1000)))
	}
	return fmt.Sprintf("%.1fkm", roundHalfUp(distanceKm*10)/10)
}

// roundHalfUp は最も近い整数に丸める（0.5は正の無限大方向）
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
