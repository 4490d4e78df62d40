package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/gesture"
	"github.com/depeter/wheelpicker/internal/wheel"
)

// PickerScreen hosts a single string wheel: pointer drags feed the
// controller's gesture pipeline, while the mouse wheel, keys, a rotary dial
// and taps step the selection directly.
type PickerScreen struct {
	Picker *wheel.Controller[string]
	View   *WheelView[string]
	Drag   *gesture.Drag
	Dial   *Dial

	Title string
	keys  config.KeybindConfig
	vis   int

	logger *log.Logger
	now    func() time.Time

	selected   string
	hasPick    bool
	endReached bool
	endAlpha   float64
	width      int
	height     int

	// OnSelect receives every settled selection.
	OnSelect func(item string, endReached bool)
	// OnConfirm receives the selection when the confirm key is pressed.
	OnConfirm func(item string)
}

func NewPickerScreen(picker *wheel.Controller[string], cfg *config.Config, dial *Dial, logger *log.Logger) *PickerScreen {
	if logger == nil {
		logger = log.Default()
	}
	ps := &PickerScreen{
		Picker: picker,
		View:   NewWheelView(picker),
		Drag:   gesture.NewDrag(picker.Config().Axis),
		Dial:   dial,
		Title:  "Pick an item",
		keys:   cfg.Keybinds,
		vis:    max(cfg.UI.VisibleItems, 1),
		logger: logger,
		now:    time.Now,
	}
	ps.Drag.DeadZone = DragDeadZone
	if item, ok := picker.SelectedItem(); ok {
		ps.selected = item
	}

	picker.OnItemSelect = func(item string) {
		ps.selected = item
		ps.hasPick = true
	}
	picker.IsEndReached = func(reached bool) {
		ps.endReached = reached
		if ps.OnSelect != nil {
			ps.OnSelect(ps.selected, reached)
		}
	}
	return ps
}

func (ps *PickerScreen) Name() string { return "Picker" }

func (ps *PickerScreen) OnEnter() {}

func (ps *PickerScreen) OnExit() {
	ps.Drag.Cancel(ps.now(), ps.Picker)
}

// Layout centers the wheel: VisibleItems extents along the axis, the whole
// free space across it.
func (ps *PickerScreen) Layout(width, height int) {
	ps.width, ps.height = width, height

	cfg := ps.Picker.Config()
	along := cfg.ItemExtent * float64(ps.vis)
	top := float64(FontSizeTitle + WheelPadding*2)
	avail := Rect{
		X: WheelPadding,
		Y: top,
		W: float64(width) - WheelPadding*2,
		H: float64(height) - top - StatusBarHeight - WheelPadding,
	}
	cx, cy := avail.Center()
	var b Rect
	if cfg.Axis == wheel.Horizontal {
		w := math.Min(along, avail.W)
		b = Rect{X: cx - w/2, Y: avail.Y, W: w, H: avail.H}
	} else {
		h := math.Min(along, avail.H)
		b = Rect{X: avail.X, Y: cy - h/2, W: avail.W, H: h}
	}
	ps.View.Bounds = b
	ps.Drag.Bounds = b
}

func (ps *PickerScreen) Update() (*ScreenTransition, error) {
	now := ps.now()

	if KeyJustPressed(ps.keys.Quit) || BackJustPressed() {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	if x, y, tapped := ps.Drag.Update(PollPointer(), ps.Picker, now); tapped {
		if i, ok := ps.View.IndexAt(x, y); ok {
			ps.logger.Debug("picker: tap", "index", i)
			ps.Picker.Select(i, now)
		}
	}

	if step := ps.steps(); step != 0 && !ps.Drag.Dragging() {
		ps.Picker.Step(step, now)
	}

	if KeyJustPressed(ps.keys.Confirm) && !IsModifierPressed() {
		if item, ok := ps.Picker.SelectedItem(); ok && ps.OnConfirm != nil {
			ps.OnConfirm(item)
		}
	}

	ps.Picker.Tick(now)

	target := 0.0
	if ps.endReached {
		target = 1
	}
	ps.endAlpha = Lerp(ps.endAlpha, target, FocusAnimSpeed)
	return nil, nil
}

// steps sums this frame's discrete selection moves. Positive moves towards
// later items.
func (ps *PickerScreen) steps() int {
	step := 0
	if KeyNameRepeating(ps.keys.Next) {
		step++
	}
	if KeyNameRepeating(ps.keys.Prev) {
		step--
	}
	if KeyRepeating(ebiten.KeyPageDown) {
		step += ps.vis
	}
	if KeyRepeating(ebiten.KeyPageUp) {
		step -= ps.vis
	}
	if KeyJustPressed("home") {
		step -= ps.Picker.Len()
	}
	if KeyJustPressed("end") {
		step += ps.Picker.Len()
	}

	// Scrolling down or right moves forward, like dragging the content up.
	dx, dy := MouseWheelDelta()
	if d := ps.Picker.Config().Axis.Main(dx, dy); d > 0 {
		step--
	} else if d < 0 {
		step++
	}

	if ps.Dial != nil {
		step += ps.Dial.Steps()
	}
	return step
}

func (ps *PickerScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, ps.Title, WheelPadding, WheelPadding, FontSizeTitle, ColorText)

	if ps.Picker.Len() == 0 {
		cx, cy := ps.View.Bounds.Center()
		DrawTextCentered(dst, "(no items)", cx, cy, FontSizeBody, ColorTextMuted)
	} else {
		ps.View.Draw(dst)
	}

	ps.drawStatus(dst)
}

func (ps *PickerScreen) drawStatus(dst *ebiten.Image) {
	y := float64(ps.height) - StatusBarHeight
	vector.DrawFilledRect(dst, 0, float32(y), float32(ps.width), StatusBarHeight, ColorSurface, false)

	status := "Nothing selected yet"
	if ps.hasPick {
		status = "Selected: " + ps.selected
	}
	ty := y + (StatusBarHeight-FontSizeBody)/2
	DrawText(dst, status, WheelPadding, ty, FontSizeBody, ColorText)

	if ps.endAlpha > 0.01 {
		const label = "end reached"
		w, _ := MeasureText(label, FontSizeSmall)
		x := float64(ps.width) - WheelPadding - w
		DrawTextTransformed(dst, label, x+w/2, y+StatusBarHeight/2, FontSizeSmall, 1, 1, ps.endAlpha, ColorAccent)
	}
}

// DebugLines describes the controller state for the debug overlay.
func (ps *PickerScreen) DebugLines() []string {
	p := ps.Picker
	start, end := p.VisibleRange()
	lines := []string{
		fmt.Sprintf("phase      %s", p.Phase()),
		fmt.Sprintf("offset     %.2f", p.Offset()),
		fmt.Sprintf("velocity   %.1f/s", p.Velocity()),
		fmt.Sprintf("committed  %d of %d", p.SelectedIndex(), p.Len()),
		fmt.Sprintf("visible    [%d, %d)", start, end),
		fmt.Sprintf("dragging   %t", ps.Drag.Dragging()),
	}
	if ps.Dial != nil {
		for _, ev := range ps.Dial.RecentEvents() {
			age := time.Since(ev.Time).Truncate(time.Millisecond)
			lines = append(lines, fmt.Sprintf("dial %s %+d  %s ago", ev.Device, ev.Value, age))
		}
	}
	return lines
}
