package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{in: "", want: Vertical},
		{in: "vertical", want: Vertical},
		{in: "V", want: Vertical},
		{in: " Horizontal ", want: Horizontal},
		{in: "h", want: Horizontal},
		{in: "diagonal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAxisComponents(t *testing.T) {
	assert.Equal(t, 7.0, Vertical.Main(3, 7))
	assert.Equal(t, 3.0, Vertical.Cross(3, 7))
	assert.Equal(t, 3.0, Horizontal.Main(3, 7))
	assert.Equal(t, 7.0, Horizontal.Cross(3, 7))

	x, y := Horizontal.Point(10, 2)
	assert.Equal(t, [2]float64{10, 2}, [2]float64{x, y})
	x, y = Vertical.Point(10, 2)
	assert.Equal(t, [2]float64{2, 10}, [2]float64{x, y})
}

func TestConfigResolve(t *testing.T) {
	got := Config{}.Resolve()
	assert.Equal(t, DefaultConfig(), got)

	custom := Config{
		ItemExtent:            24,
		DistanceMultiplier:    0.5,
		WheelHeightMultiplier: 1,
		EndOffset:             3,
		Axis:                  Horizontal,
		Spring:                SpringConfig{Damping: 10},
	}.Resolve()
	assert.Equal(t, 24.0, custom.ItemExtent)
	assert.Equal(t, 3, custom.EndOffset)
	assert.Equal(t, Horizontal, custom.Axis)
	assert.Equal(t, 10.0, custom.Spring.Damping)
	assert.Equal(t, 500.0, custom.Spring.Stiffness)
	assert.Equal(t, 1.0, custom.Spring.Mass)
	assert.Equal(t, DefaultDeceleration, custom.Deceleration)

	bad := Config{ItemExtent: math.NaN(), Deceleration: 1.2, Axis: Axis(9)}.Resolve()
	assert.Equal(t, DefaultItemExtent, bad.ItemExtent)
	assert.Equal(t, DefaultDeceleration, bad.Deceleration)
	assert.Equal(t, Vertical, bad.Axis)
}
