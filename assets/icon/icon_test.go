package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

func TestGenerateFocusRowBrightest(t *testing.T) {
	img := generate(64).(*image.RGBA)

	// The middle row is fully opaque accent; the outer rows are faded.
	mid := img.RGBAAt(32, 32)
	edge := img.RGBAAt(32, 4)
	assert.Equal(t, accent, mid)
	assert.Less(t, int(edge.R)+int(edge.G)+int(edge.B), int(mid.R)+int(mid.G)+int(mid.B))
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	fillRect(img, 0, 0, 1, 1, darkBG)
	blendPixel(img, 0, 0, fade(primary, 0))
	assert.Equal(t, darkBG, img.RGBAAt(0, 0))

	blendPixel(img, 0, 0, primary)
	assert.Equal(t, primary, img.RGBAAt(0, 0))
}
