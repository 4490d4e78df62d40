// Package tui hosts a wheel in the terminal. One item occupies one row on a
// vertical wheel and one fixed-width slot on a horizontal one.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/depeter/wheelpicker/internal/gesture"
	"github.com/depeter/wheelpicker/internal/wheel"
)

// frameInterval paces animation ticks while the wheel is moving.
const frameInterval = time.Second / 60

// wheelTop is the first screen row of the wheel, below the title.
const wheelTop = 2

// crossRows is the height of a horizontal wheel.
const crossRows = 3

type tickMsg time.Time

// Model is the bubbletea model around a string wheel.
type Model struct {
	Title string

	picker *wheel.Controller[string]
	drag   *gesture.Drag
	help   help.Model
	logger *log.Logger
	now    func() time.Time

	visible int
	width   int
	height  int
	pressed bool
	ticking bool

	selected   string
	hasPick    bool
	endReached bool

	chosen    string
	confirmed bool
}

// New wraps picker. visible is the number of rows (or slots) the wheel
// shows; it is forced odd so one sits on the focus line.
func New(picker *wheel.Controller[string], visible int, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	if visible < 1 {
		visible = 7
	}
	if visible%2 == 0 {
		visible++
	}
	m := &Model{
		Title:   "Pick an item",
		picker:  picker,
		drag:    gesture.NewDrag(picker.Config().Axis),
		help:    help.New(),
		logger:  logger,
		now:     time.Now,
		visible: visible,
		width:   80,
		height:  24,
	}
	if item, ok := picker.SelectedItem(); ok {
		m.selected = item
	}
	picker.OnItemSelect = func(item string) {
		m.selected = item
		m.hasPick = true
	}
	picker.IsEndReached = func(reached bool) {
		m.endReached = reached
		m.logger.Debug("tui: selected", "item", m.selected, "endReached", reached)
	}
	m.layout()
	return m
}

// Chosen returns the item confirmed with enter. ok is false when the user
// quit without confirming.
func (m *Model) Chosen() (item string, ok bool) {
	return m.chosen, m.confirmed
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animate starts the frame ticker when the wheel began moving and no
// ticker is running.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.picker.Animating() {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tickMsg:
		m.picker.Tick(m.now())
		if m.picker.Animating() {
			return m, tickCmd()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, m.animate()
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Confirm):
		if item, ok := m.picker.SelectedItem(); ok {
			m.chosen, m.confirmed = item, true
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Prev):
		m.step(-1)
	case key.Matches(msg, keys.Next):
		m.step(1)
	case key.Matches(msg, keys.PageUp):
		m.step(-m.visible)
	case key.Matches(msg, keys.PageDown):
		m.step(m.visible)
	case key.Matches(msg, keys.First):
		m.step(-m.picker.Len())
	case key.Matches(msg, keys.Last):
		m.step(m.picker.Len())
	}
	return m, m.animate()
}

func (m *Model) step(n int) {
	m.picker.Step(n, m.now())
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	now := m.now()
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			m.step(-1)
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			m.step(1)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
	case tea.MouseActionRelease:
		m.pressed = false
	}

	x, y := m.toUnits(msg.X, msg.Y)
	p := gesture.Pointer{X: x, Y: y, Pressed: m.pressed}
	if tx, ty, tapped := m.drag.Update(p, m.picker, now); tapped {
		if i, ok := m.indexAtUnits(tx, ty); ok {
			m.picker.Select(i, now)
		}
	}
}

// unitsPerCell returns how many offset units one terminal cell spans on
// each screen axis.
func (m *Model) unitsPerCell() (ux, uy float64) {
	e := m.picker.Config().ItemExtent
	if m.picker.Config().Axis == wheel.Horizontal {
		return e / float64(m.slotWidth()), e
	}
	return e / 2, e
}

func (m *Model) toUnits(col, row int) (float64, float64) {
	ux, uy := m.unitsPerCell()
	return float64(col) * ux, float64(row) * uy
}

// layout recomputes the drag bounds for the current size.
func (m *Model) layout() {
	ux, uy := m.unitsPerCell()
	rows := m.visible
	if m.picker.Config().Axis == wheel.Horizontal {
		rows = crossRows
	}
	m.drag.Bounds = gesture.Rect{
		X: 0,
		Y: wheelTop * uy,
		W: float64(max(m.width-1, 0)) * ux,
		H: float64(rows-1) * uy,
	}
}

// center returns the focus cell.
func (m *Model) center() (col, row int) {
	if m.picker.Config().Axis == wheel.Horizontal {
		return m.width / 2, wheelTop + crossRows/2
	}
	return 0, wheelTop + m.visible/2
}

func (m *Model) indexAtUnits(x, y float64) (int, bool) {
	if m.picker.Len() == 0 {
		return 0, false
	}
	col, row := m.center()
	cx, cy := m.toUnits(col, row)
	rel := m.picker.Config().Axis.Main(x-cx, y-cy)
	return m.picker.IndexAt(m.picker.Offset() - rel), true
}

// slotWidth is the column width of one item on a horizontal wheel.
func (m *Model) slotWidth() int {
	w := 1
	for _, item := range m.picker.Items() {
		w = max(w, lipgloss.Width(item))
	}
	return w + 2
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.Title))
	b.WriteString("\n\n")

	if m.picker.Len() == 0 {
		b.WriteString(emptyStyle.Render("(no items)"))
		b.WriteString(strings.Repeat("\n", m.wheelRows()))
	} else if m.picker.Config().Axis == wheel.Horizontal {
		b.WriteString(m.renderHorizontal())
	} else {
		b.WriteString(m.renderVertical())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m *Model) wheelRows() int {
	if m.picker.Config().Axis == wheel.Horizontal {
		return crossRows
	}
	return m.visible
}

func (m *Model) statusLine() string {
	status := "Nothing selected yet"
	if m.hasPick {
		status = "Selected: " + m.selected
	}
	line := statusTextStyle.Render(status)
	if m.endReached {
		line += "  " + endReachedStyle.Render("end reached")
	}
	return line
}

// span is a run of styled text placed at a column.
type span struct {
	col  int
	text string
}

// renderVertical draws one row per item position, indented by the cross
// translation and shortened by the cross-axis scale.
func (m *Model) renderVertical() string {
	cfg := m.picker.Config()
	items := m.picker.Items()
	rows := make([]string, m.visible)
	half := m.visible / 2

	// Cross translation is measured in extents; two columns per extent.
	const colsPerExtent = 2
	indent := int(math.Ceil(cfg.WheelHeightMultiplier * colsPerExtent))
	marker := focusStyle.Render("›")

	start, end := m.picker.VisibleRange()
	for i := start; i < end; i++ {
		tr := m.picker.Transform(i)
		pos := (float64(i)*cfg.ItemExtent + m.picker.Offset()) / cfg.ItemExtent
		r := half + int(math.Round(pos))
		if r < 0 || r >= m.visible || tr.Opacity <= 0 {
			continue
		}
		shift := int(math.Round(tr.CrossTranslation / cfg.ItemExtent * colsPerExtent))
		pad := max(indent+shift, 0)
		rows[r] = strings.Repeat(" ", pad) + m.renderItem(items[i], tr, r == half)
	}
	rows[half] = marker + strings.TrimPrefix(rows[half], " ")
	return strings.Join(rows, "\n") + "\n"
}

// renderHorizontal draws items in slots across crossRows lines, the
// cross translation moving faded items off the middle line.
func (m *Model) renderHorizontal() string {
	cfg := m.picker.Config()
	items := m.picker.Items()
	slot := m.slotWidth()
	centerCol, _ := m.center()
	lines := make([][]span, crossRows)
	mid := crossRows / 2

	start, end := m.picker.VisibleRange()
	for i := start; i < end; i++ {
		tr := m.picker.Transform(i)
		if tr.Opacity <= 0 {
			continue
		}
		pos := (float64(i)*cfg.ItemExtent + m.picker.Offset()) / cfg.ItemExtent
		row := mid + int(math.Round(tr.CrossTranslation/(cfg.ItemExtent*cfg.WheelHeightMultiplier)))
		row = min(max(row, 0), crossRows-1)
		text := m.renderItem(items[i], tr, math.Abs(pos) < 0.5)
		col := centerCol + int(math.Round(pos*float64(slot))) - lipgloss.Width(text)/2
		lines[row] = append(lines[row], span{col: col, text: text})
	}

	out := make([]string, crossRows)
	for r, spans := range lines {
		out[r] = joinSpans(spans, m.width)
	}
	return strings.Join(out, "\n") + "\n"
}

// joinSpans lays spans out left to right, dropping any that overlap the
// previous one or fall off either edge.
func joinSpans(spans []span, width int) string {
	var b strings.Builder
	col := 0
	for _, s := range spans {
		w := lipgloss.Width(s.text)
		if s.col < col || s.col < 0 || s.col+w > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", s.col-col))
		b.WriteString(s.text)
		col = s.col + w
	}
	return b.String()
}

// renderItem styles one label: faded by opacity, cut to its cross-axis
// scale, and highlighted on the focus line.
func (m *Model) renderItem(label string, tr wheel.Transform, focused bool) string {
	label = truncate(label, tr.Scale)
	if focused {
		return focusStyle.Foreground(focusFade(tr.Opacity)).Render(label)
	}
	return lipgloss.NewStyle().Foreground(fade(tr.Opacity)).Render(label)
}

// truncate keeps the leading share of label given by scale, marking the
// cut with an ellipsis.
func truncate(label string, scale float64) string {
	runes := []rune(label)
	if scale >= 1 || len(runes) <= 1 {
		return label
	}
	keep := int(math.Ceil(float64(len(runes)) * scale))
	if keep >= len(runes) {
		return label
	}
	if keep <= 1 {
		return "…"
	}
	return string(runes[:keep-1]) + "…"
}

// Describe summarizes the wheel for logs.
func (m *Model) Describe() string {
	return fmt.Sprintf("%s offset=%.1f index=%d/%d", m.picker.Phase(), m.picker.Offset(), m.picker.SelectedIndex(), m.picker.Len())
}
