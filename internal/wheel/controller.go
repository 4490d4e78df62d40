package wheel

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is the stage of the gesture-to-animation pipeline.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseDecaying
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseDecaying:
		return "decaying"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// Haptic triggers a light impact. Implementations should not block; the
// controller ignores both errors and panics.
type Haptic interface {
	LightImpact() error
}

type options struct {
	haptic      Haptic
	logger      *log.Logger
	defaultItem any
	hasDefault  bool
}

// Option configures a Controller at construction.
type Option func(*options)

// WithHaptic sets the side channel fired on every item boundary crossed
// while dragging.
func WithHaptic(h Haptic) Option {
	return func(o *options) { o.haptic = h }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDefaultItem selects item initially. An item missing from the list
// falls back to index 0.
func WithDefaultItem[T comparable](item T) Option {
	return func(o *options) {
		o.defaultItem = item
		o.hasDefault = true
	}
}

// Controller owns the continuous offset of a wheel, its committed index
// and the drag -> decay -> settle pipeline.
//
// A Controller is driven from a single goroutine: gesture events and Tick
// calls must be serialized by the host.
type Controller[T comparable] struct {
	// OnItemSelect receives the settled item once per release.
	OnItemSelect func(item T)
	// IsEndReached receives whether the settled index is near the tail,
	// right after OnItemSelect.
	IsEndReached func(reachedEnd bool)

	cfg    Config
	items  []T
	haptic Haptic
	logger *log.Logger

	offset    float64
	velocity  float64
	anchor    float64
	committed int

	phase      Phase
	phaseStart time.Time
	decay      decay
	settle     settle
}

// New builds a controller over items. The offset starts at the default
// item, or at index 0.
func New[T comparable](items []T, cfg Config, opts ...Option) *Controller[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}

	c := &Controller[T]{
		cfg:    cfg.Resolve(),
		items:  items,
		haptic: o.haptic,
		logger: o.logger,
	}
	if o.hasDefault {
		if item, ok := o.defaultItem.(T); ok {
			c.committed = max(IndexOf(items, item), 0)
		}
	}
	c.offset = c.restingOffset(c.committed)
	return c
}

// IndexOf returns the index of item in items, or -1.
func IndexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

// Config returns the resolved configuration.
func (c *Controller[T]) Config() Config { return c.cfg }

// Items returns the current item list.
func (c *Controller[T]) Items() []T { return c.items }

// Len returns the number of items.
func (c *Controller[T]) Len() int { return len(c.items) }

// Phase returns the current pipeline stage.
func (c *Controller[T]) Phase() Phase { return c.phase }

// Animating reports whether a decay or spring is in flight.
func (c *Controller[T]) Animating() bool {
	return c.phase == PhaseDecaying || c.phase == PhaseSettling
}

// Offset returns the offset as of the last update or Tick.
func (c *Controller[T]) Offset() float64 { return c.offset }

// Velocity returns the offset velocity (units/s) as of the last Tick.
func (c *Controller[T]) Velocity() float64 { return c.velocity }

// SelectedIndex returns the last committed index.
func (c *Controller[T]) SelectedIndex() int { return c.committed }

// SelectedItem returns the item at the committed index. ok is false for an
// empty wheel.
func (c *Controller[T]) SelectedItem() (item T, ok bool) {
	if len(c.items) == 0 {
		return item, false
	}
	return c.items[c.committed], true
}

// MinOffset is the most negative offset, where the last item rests.
func (c *Controller[T]) MinOffset() float64 {
	if len(c.items) == 0 {
		return 0
	}
	return float64(len(c.items)-1) * -c.cfg.ItemExtent
}

func (c *Controller[T]) clampOffset(v float64) float64 {
	if math.IsNaN(v) {
		return c.offset
	}
	return clamp(v, c.MinOffset(), 0)
}

// IndexAt returns the item index an offset rounds to, always within
// [0, Len()-1]; 0 for an empty wheel.
func (c *Controller[T]) IndexAt(offset float64) int {
	n := len(c.items)
	if n == 0 {
		return 0
	}
	i := int(math.Round(offset / -c.cfg.ItemExtent))
	return min(max(i, 0), n-1)
}

func (c *Controller[T]) restingOffset(index int) float64 {
	if index == 0 {
		return 0
	}
	return float64(index) * -c.cfg.ItemExtent
}

// EndReached reports whether index lies within EndOffset items of the
// tail.
//
// A list no longer than EndOffset has no tail region, so it never reports
// the end, not even on its last item. Callers paging in more data for short
// lists should lower EndOffset below the list length.
func (c *Controller[T]) EndReached(index int) bool {
	n := len(c.items)
	return n > c.cfg.EndOffset && index >= n-c.cfg.EndOffset
}

// GestureStart anchors a new drag at the offset live at now, cancelling
// any decay or spring in flight without firing its callbacks.
func (c *Controller[T]) GestureStart(now time.Time) {
	c.offset, _ = c.sample(now)
	c.velocity = 0
	c.anchor = c.offset
	c.setPhase(PhaseDragging, now)
}

// GestureUpdate moves the offset to anchor+translation, clamped to the
// item range. Crossing a full item from the committed index commits the
// new index and fires the haptic. Updates outside a drag are ignored.
func (c *Controller[T]) GestureUpdate(translation float64) {
	if c.phase != PhaseDragging {
		return
	}
	c.offset = c.clampOffset(c.anchor + translation)
	if len(c.items) == 0 {
		return
	}
	if math.Abs(c.offset-c.restingOffset(c.committed)) >= c.cfg.ItemExtent {
		c.committed = c.IndexAt(c.offset)
		c.logger.Debug("wheel: boundary crossed", "index", c.committed, "offset", c.offset)
		c.fireHaptic()
	}
}

// GestureEnd commits the index under the offset and starts the decay with
// the release velocity (units/s along the axis).
func (c *Controller[T]) GestureEnd(velocity float64, now time.Time) {
	if c.phase != PhaseDragging {
		return
	}
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	c.committed = c.IndexAt(c.offset)
	c.decay = newDecay(c.offset, velocity, c.MinOffset(), 0, c.cfg)
	c.velocity = velocity
	c.setPhase(PhaseDecaying, now)
	c.advance(now)
}

// Tick advances the pipeline to now, firing the settle callbacks when the
// decay comes to rest, and returns the live offset.
func (c *Controller[T]) Tick(now time.Time) float64 {
	c.advance(now)
	return c.offset
}

// OffsetAt samples the offset at now without advancing the pipeline.
func (c *Controller[T]) OffsetAt(now time.Time) float64 {
	pos, _ := c.sample(now)
	return pos
}

// Select commits index directly, as a keyboard step or a tap would: the
// haptic fires if the index changed, the callbacks fire once and the
// spring lands on the item. Ignored during a drag or on an empty wheel.
func (c *Controller[T]) Select(index int, now time.Time) {
	if c.phase == PhaseDragging || len(c.items) == 0 {
		return
	}
	index = min(max(index, 0), len(c.items)-1)
	c.offset, c.velocity = c.sample(now)
	if index != c.committed {
		c.committed = index
		c.fireHaptic()
	}
	c.notify()
	c.startSettle(now)
	c.advance(now)
}

// Step moves the selection by n items from where the wheel is heading: the
// item under the live offset during a glide, the committed item otherwise.
// It behaves like Select otherwise.
func (c *Controller[T]) Step(n int, now time.Time) {
	base := c.committed
	if c.phase == PhaseDecaying {
		base = c.IndexAt(c.OffsetAt(now))
	}
	c.Select(base+n, now)
}

// SetItems replaces the item list. The committed index and offset are
// clamped to the new range; outside a drag the wheel springs back onto
// the committed item without firing callbacks.
func (c *Controller[T]) SetItems(items []T, now time.Time) {
	pos, vel := c.sample(now)
	c.items = items
	c.committed = min(c.committed, max(len(items)-1, 0))
	c.offset = c.clampOffset(pos)
	if c.phase == PhaseDragging {
		c.anchor = c.clampOffset(c.anchor)
		return
	}
	c.velocity = vel
	c.startSettle(now)
	c.advance(now)
}

// Transform returns the visual transform of the item at index for the
// current offset.
func (c *Controller[T]) Transform(index int) Transform {
	return ItemTransform(c.offset, index, c.cfg)
}

// Transforms returns the transform of every item, indexed like Items.
func (c *Controller[T]) Transforms() []Transform {
	out := make([]Transform, len(c.items))
	for i := range c.items {
		out[i] = c.Transform(i)
	}
	return out
}

// VisibleRange returns the start (inclusive) and end (exclusive) indices
// of the items that are not fully faded at the current offset.
func (c *Controller[T]) VisibleRange() (start, end int) {
	n := len(c.items)
	if n == 0 {
		return 0, 0
	}
	center := c.offset / -c.cfg.ItemExtent
	r := saturationRadius(c.cfg)
	if math.IsInf(r, 1) {
		return 0, n
	}
	start = max(int(math.Floor(center-r)), 0)
	end = min(int(math.Ceil(center+r))+1, n)
	if start > end {
		start = end
	}
	return start, end
}

func (c *Controller[T]) setPhase(p Phase, now time.Time) {
	if p != c.phase {
		c.logger.Debug("wheel: phase", "from", c.phase, "to", p, "offset", c.offset)
	}
	c.phase = p
	c.phaseStart = now
}

// sample evaluates the animation in flight at now, with no transitions.
func (c *Controller[T]) sample(now time.Time) (pos, vel float64) {
	elapsed := now.Sub(c.phaseStart)
	switch c.phase {
	case PhaseDecaying:
		pos, vel, _ = c.decay.at(elapsed)
	case PhaseSettling:
		pos, vel, _ = c.settle.at(elapsed)
	default:
		pos, vel = c.offset, c.velocity
	}
	return pos, vel
}

func (c *Controller[T]) advance(now time.Time) {
	switch c.phase {
	case PhaseDecaying:
		pos, vel, done := c.decay.at(now.Sub(c.phaseStart))
		c.offset, c.velocity = pos, vel
		if !done {
			return
		}
		c.committed = c.IndexAt(c.offset)
		c.notify()
		c.startSettle(now)
		c.advanceSettle(now)
	case PhaseSettling:
		c.advanceSettle(now)
	}
}

func (c *Controller[T]) advanceSettle(now time.Time) {
	pos, vel, done := c.settle.at(now.Sub(c.phaseStart))
	c.offset, c.velocity = c.clampOffset(pos), vel
	if done {
		c.setPhase(PhaseIdle, now)
	}
}

func (c *Controller[T]) startSettle(now time.Time) {
	target := c.restingOffset(c.committed)
	c.settle = newSettle(c.offset, c.velocity, target, c.MinOffset(), 0, c.cfg.Spring)
	c.setPhase(PhaseSettling, now)
}

// notify invokes the selection and end-reached callbacks for the committed
// index. An empty wheel has nothing to select.
func (c *Controller[T]) notify() {
	if len(c.items) == 0 {
		return
	}
	item := c.items[c.committed]
	reached := c.EndReached(c.committed)
	c.logger.Debug("wheel: settled", "index", c.committed, "endReached", reached)
	if c.OnItemSelect != nil {
		c.OnItemSelect(item)
	}
	if c.IsEndReached != nil {
		c.IsEndReached(reached)
	}
}

func (c *Controller[T]) fireHaptic() {
	if c.haptic == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("wheel: haptic panicked", "recovered", r)
		}
	}()
	if err := c.haptic.LightImpact(); err != nil {
		c.logger.Debug("wheel: haptic failed", "err", err)
	}
}
