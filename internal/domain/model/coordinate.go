package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
)

// ErrInvalidCoordinate は緯度経度が有効範囲外であることを表す
var ErrInvalidCoordinate = errors.New("invalid coordinate")

var coordinateValidator = validator.New()

// Coordinate 緯度経度（10進数の度）を表す基本的な型
type Coordinate struct {
	Latitude  float64 `json:"latitude" firestore:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" firestore:"longitude" validate:"min=-180,max=180"`
}

// Validate 緯度は[-90,90]、経度は[-180,180]の範囲内かつ有限値であることを確認する
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return fmt.Errorf("%w: 緯度経度が有限値ではありません (%v, %v)", ErrInvalidCoordinate, c.Latitude, c.Longitude)
	}
	if err := coordinateValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, err)
	}
	return nil
}

// Point orb.Point（[経度, 緯度]の順）に変換
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint orb.Point から Coordinate に変換
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
	}
}
