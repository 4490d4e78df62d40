package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/wheelpicker/internal/wheel"
)

// WheelView draws a wheel controller into a rectangle. Items are laid out
// along the axis at their resting positions, shifted by the live offset,
// with each item's cross translation, opacity and cross-axis scale.
type WheelView[T comparable] struct {
	Picker *wheel.Controller[T]
	Bounds Rect

	// Label turns an item into the text drawn for it; fmt.Sprint by default.
	Label func(T) string
	// Render, when set, replaces the label drawing for an item centered on
	// (cx, cy) with the given transform.
	Render func(dst *ebiten.Image, item T, cx, cy float64, tr wheel.Transform)

	FontSize  float64
	TextColor color.Color
}

func NewWheelView[T comparable](picker *wheel.Controller[T]) *WheelView[T] {
	return &WheelView[T]{
		Picker:    picker,
		FontSize:  picker.Config().ItemExtent * WheelFontRatio,
		TextColor: ColorText,
	}
}

func (v *WheelView[T]) label(item T) string {
	if v.Label != nil {
		return v.Label(item)
	}
	return fmt.Sprint(item)
}

// itemCenter returns the screen position of item i for the current offset.
func (v *WheelView[T]) itemCenter(i int, tr wheel.Transform) (float64, float64) {
	cfg := v.Picker.Config()
	cx, cy := v.Bounds.Center()
	main := float64(i)*cfg.ItemExtent + v.Picker.Offset()
	dx, dy := cfg.Axis.Point(main, tr.CrossTranslation)
	return cx + dx, cy + dy
}

// Draw renders the focus band and the visible items, clipped to Bounds.
func (v *WheelView[T]) Draw(dst *ebiten.Image) {
	r := image.Rect(int(v.Bounds.X), int(v.Bounds.Y),
		int(v.Bounds.X+v.Bounds.W), int(v.Bounds.Y+v.Bounds.H))
	clip, ok := dst.SubImage(r).(*ebiten.Image)
	if !ok || r.Empty() {
		return
	}

	v.drawFocusBand(clip)

	cfg := v.Picker.Config()
	items := v.Picker.Items()
	start, end := v.Picker.VisibleRange()
	for i := start; i < end; i++ {
		tr := v.Picker.Transform(i)
		if tr.Opacity <= 0 {
			continue
		}
		cx, cy := v.itemCenter(i, tr)
		if v.Render != nil {
			v.Render(clip, items[i], cx, cy, tr)
			continue
		}
		// Scale squeezes the cross axis only, so labels keep their height
		// on a vertical wheel and their width on a horizontal one.
		sx, sy := cfg.Axis.Point(1, tr.Scale)
		DrawTextTransformed(clip, v.label(items[i]), cx, cy, v.FontSize, sx, sy, tr.Opacity, v.TextColor)
	}
}

func (v *WheelView[T]) drawFocusBand(dst *ebiten.Image) {
	cfg := v.Picker.Config()
	cx, cy := v.Bounds.Center()
	half := cfg.ItemExtent / 2
	if cfg.Axis == wheel.Horizontal {
		vector.DrawFilledRect(dst, float32(cx-half), float32(v.Bounds.Y),
			float32(cfg.ItemExtent), float32(v.Bounds.H), ColorFocusBand, false)
		return
	}
	vector.DrawFilledRect(dst, float32(v.Bounds.X), float32(cy-half),
		float32(v.Bounds.W), float32(cfg.ItemExtent), ColorFocusBand, false)
}

// IndexAt maps a screen point to the item drawn there, for tap selection.
func (v *WheelView[T]) IndexAt(x, y float64) (int, bool) {
	if v.Picker.Len() == 0 || !v.Bounds.Contains(x, y) {
		return 0, false
	}
	cfg := v.Picker.Config()
	cx, cy := v.Bounds.Center()
	rel := cfg.Axis.Main(x-cx, y-cy)
	return v.Picker.IndexAt(v.Picker.Offset() - rel), true
}
