package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want string
	}{
		{"0は0m", 0, "0m"},
		{"0.5ちょうどは500m", 0.5, "500m"},
		{"メートルの四捨五入", 0.0049, "5m"},
		{"メートルの切り捨て", 0.0914, "91m"},
		{"1km未満の上限付近", 0.9994, "999m"},
		{"1km未満で1000mに繰り上がる", 0.9995, "1000m"},
		{"1kmちょうどはkm表示", 1.0, "1.0km"},
		{"0.05は切り上げ", 1.25, "1.3km"},
		{"小数1桁に丸める", 16.804008, "16.8km"},
		{"21.005km", 21.005010, "21.0km"},
		{"大きな距離", 1234.56, "1234.6km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.km))
		})
	}
}
