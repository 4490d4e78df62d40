// Package icon draws the window icon: a vertical wheel whose rows fade
// and narrow away from the focus band, using the wheel's own transform.
package icon

import (
	"image"
	"image/color"

	"github.com/depeter/wheelpicker/internal/wheel"
)

// Theme colors from the app
var (
	primary   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	accent    = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	bandColor = color.RGBA{R: 0x00, G: 0x52, B: 0x6E, A: 0xFF}
)

// rows is how many items the icon shows on each side of the focus.
const rows = 3

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Fill background
	fillRect(img, 0, 0, size, size, darkBG)

	drawWheel(img, s)

	return img
}

// drawWheel lays out 2*rows+1 bars around the center. Each bar's width
// and opacity come from wheel.ItemTransform with the selection on the
// middle bar.
func drawWheel(img *image.RGBA, s float64) {
	extent := s / float64(2*rows+1)
	cfg := wheel.DefaultConfig()
	cfg.ItemExtent = extent
	cfg.WheelHeightMultiplier = 0.4
	cfg.DistanceMultiplier = 0.45
	offset := -float64(rows) * extent

	// Focus band behind the middle bar
	bandY := s/2 - extent/2
	fillRoundedRect(img, s*0.06, bandY, s*0.88, extent, extent*0.3, bandColor)

	barH := extent * 0.55
	for i := 0; i <= 2*rows; i++ {
		tr := wheel.ItemTransform(offset, i, cfg)
		if tr.Opacity <= 0 {
			continue
		}
		w := s * 0.62 * tr.Scale
		cx := s/2 + tr.CrossTranslation*0.25
		cy := float64(i)*extent + extent/2
		c := primary
		if i == rows {
			c = accent
		}
		fillRoundedRect(img, cx-w/2, cy-barH/2, w, barH, barH/2, fade(c, tr.Opacity))
	}

	// Selection marker
	fillCircle(img, s*0.12, s/2, extent*0.18, accent)
}

// fade premultiplies c by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := func(v uint8) uint8 { return uint8(float64(v)*alpha + 0.5) }
	return color.RGBA{R: a(c.R), G: a(c.G), B: a(c.B), A: a(c.A)}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// c.RGBA is alpha-premultiplied, so only the destination is scaled.
	existing := img.RGBAAt(x, y)
	invAlpha := 0xFFFF - a0
	nr := r0 + uint32(existing.R)*257*invAlpha/0xFFFF
	ng := g0 + uint32(existing.G)*257*invAlpha/0xFFFF
	nb := b0 + uint32(existing.B)*257*invAlpha/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
