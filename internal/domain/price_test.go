package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProrateHourlyPrice(t *testing.T) {
	tests := []struct {
		name        string
		hourlyCents int64
		minutes     int
		want        int64
	}{
		{"ровно час", 6000, 60, 6000},
		{"полтора часа", 6000, 90, 9000},
		{"полчаса", 6000, 30, 3000},
		{"три четверти часа без остатка", 1000, 45, 750},
		{"три четверти цента округляются вверх", 1001, 45, 751}, // 1001*45/60 = 750.75 -> 751
		{"округление половины цента вверх", 99, 30, 50},         // 99*30/60 = 49.5 -> 50
		{"округление вниз ниже половины", 100, 20, 33},          // 100*20/60 = 33.33 -> 33
		{"округление вверх выше половины", 100, 40, 67},         // 100*40/60 = 66.67 -> 67
		{"нулевая ставка", 0, 60, 0},
		{"нулевая длительность", 6000, 0, 0},
		{"отрицательная длительность", 6000, -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ProrateHourlyPrice(tt.hourlyCents, tt.minutes))
		})
	}
}
