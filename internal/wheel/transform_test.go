package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		index  int
		extent float64
		want   float64
	}{
		{name: "item in focus", offset: -80, index: 2, extent: 40, want: 0},
		{name: "first item at rest", offset: 0, index: 0, extent: 40, want: 0},
		{name: "far below saturates", offset: 0, index: 30, extent: 40, want: 1},
		{name: "far above saturates", offset: -1200, index: 0, extent: 40, want: -1},
		{name: "zero extent is in focus", offset: -500, index: 7, extent: 0, want: 0},
		{name: "infinite offset saturates", offset: math.Inf(-1), index: 0, extent: 40, want: -1},
		{name: "nan offset is in focus", offset: math.NaN(), index: 3, extent: 40, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalized(tt.offset, tt.index, tt.extent, DefaultDistanceMultiplier)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestNormalizedOneItemAway(t *testing.T) {
	// One item from focus is 0.285 rad along the curve.
	got := Normalized(0, 1, 40, DefaultDistanceMultiplier)
	assert.InDelta(t, math.Sin(DefaultDistanceMultiplier), got, 1e-12)

	above := Normalized(-40, 0, 40, DefaultDistanceMultiplier)
	assert.InDelta(t, -got, above, 1e-12)
}

func TestNormalizedBounded(t *testing.T) {
	for offset := -5000.0; offset <= 5000; offset += 7.3 {
		for index := 0; index < 50; index++ {
			n := Normalized(offset, index, 40, DefaultDistanceMultiplier)
			if n < -1 || n > 1 {
				t.Fatalf("Normalized(%v, %d) = %v, outside [-1, 1]", offset, index, n)
			}
		}
	}
}

func TestItemTransform(t *testing.T) {
	cfg := DefaultConfig()

	focus := ItemTransform(-120, 3, cfg)
	assert.Equal(t, Transform{CrossTranslation: 0, Opacity: 1, Scale: 1}, focus)

	far := ItemTransform(0, 40, cfg)
	assert.InDelta(t, 40*2.6, far.CrossTranslation, 1e-9)
	assert.InDelta(t, 0, far.Opacity, 1e-12)
	assert.InDelta(t, 0, far.Scale, 1e-12)

	near := ItemTransform(0, 1, cfg)
	n := math.Sin(DefaultDistanceMultiplier)
	assert.InDelta(t, n*40*2.6, near.CrossTranslation, 1e-9)
	assert.InDelta(t, 1-n, near.Opacity, 1e-12)
	assert.Equal(t, near.Opacity, near.Scale)
}

func TestItemTransformZeroExtent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ItemExtent = 0

	got := ItemTransform(-300, 4, cfg)
	assert.Equal(t, Transform{CrossTranslation: 0, Opacity: 1, Scale: 1}, got)
}
