package tolls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrice_FallbackOrder(t *testing.T) {
	tests := []struct {
		name  string
		rates RateTable
		class VehicleClass
		want  float64
	}{
		{
			name:  "exact match",
			rates: RateTable{CarSingle: 60, CarMulti: 90},
			class: CarSingle,
			want:  60,
		},
		{
			name:  "sibling fallback single to multi",
			rates: RateTable{CarMulti: 90},
			class: CarSingle,
			want:  90,
		},
		{
			name:  "sibling fallback multi to single",
			rates: RateTable{LCVSingle: 95},
			class: LCVMulti,
			want:  95,
		},
		{
			name:  "no cross-category fallback",
			rates: RateTable{CarSingle: 60},
			class: BusSingle,
			want:  0,
		},
		{
			name:  "monthly has no sibling",
			rates: RateTable{BusSingle: 185, BusMulti: 185},
			class: BusMonthly,
			want:  0,
		},
		{
			name:  "monthly exact",
			rates: RateTable{CarMonthly: 1200},
			class: CarMonthly,
			want:  1200,
		},
		{
			name:  "empty table",
			rates: RateTable{},
			class: CarSingle,
			want:  0,
		},
		{
			name:  "unrecognized class resolves as car_single",
			rates: RateTable{CarSingle: 45},
			class: VehicleClass("truck_7axle"),
			want:  45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(Plaza{Rates: tt.rates}, tt.class)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVehicleClass(t *testing.T) {
	assert.Equal(t, BusMulti, ParseVehicleClass("bus_multi"))
	assert.Equal(t, CarSingle, ParseVehicleClass(""))
	assert.Equal(t, CarSingle, ParseVehicleClass("hovercraft"))
}
