package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/wheel/pkg/animation"
)

// JustifyDuration is how long the snap onto the nearest row takes, and the
// duration of animated index changes.
const JustifyDuration = 400 * time.Millisecond

// Default fling thresholds in pixels per second.
const (
	DefaultMinFlingVelocity = 50.0
	DefaultMaxFlingVelocity = 8000.0
)

// Phase is the scroller's motion state.
//
//	Idle ──down──► Dragging ──up──► Flinging ──settle──► Justifying ──► Idle
//	                  │                                      ▲
//	                  └──────────── slow up / cancel ────────┘
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseFlinging
	PhaseJustifying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseFlinging:
		return "flinging"
	case PhaseJustifying:
		return "justifying"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ChangeListener is called when the selected index changes. oldIndex is
// NoIndex on the first notification after a reset.
type ChangeListener func(oldIndex, newIndex int)

// Scroller owns a wheel's scroll offset and the motion that moves it.
//
// The offset is an integer pixel count where OffsetForIndex(i) centers entry
// i. Bounded scrollers keep it within [0, (itemSize-1)*itemHeight]; cyclic
// scrollers let it run freely and wrap at lookup. A Scroller is not safe for
// concurrent use.
type Scroller struct {
	// JustifySpring, when set, snaps with a damped spring instead of the
	// timed viscous-fluid slide.
	JustifySpring *animation.SpringConfig

	// MinFlingVelocity is the release speed below which the wheel justifies
	// instead of flinging.
	MinFlingVelocity float64

	// MaxFlingVelocity caps the release speed.
	MaxFlingVelocity float64

	itemHeight int
	itemSize   int
	cyclic     bool

	offset       int
	currentIndex int
	phase        Phase
	// target is the offset a justify lands on.
	target int

	sim    animation.Simulation
	ticker *animation.Ticker

	tracker VelocityTracker
	lastY   float64

	onChange ChangeListener
	onUpdate func()
}

// NewScroller creates an idle scroller at offset zero.
func NewScroller(itemHeight, itemSize int, cyclic bool) *Scroller {
	s := &Scroller{
		MinFlingVelocity: DefaultMinFlingVelocity,
		MaxFlingVelocity: DefaultMaxFlingVelocity,
		itemHeight:       itemHeight,
		itemSize:         itemSize,
		cyclic:           cyclic,
	}
	s.currentIndex = IndexForOffset(0, itemHeight, itemSize)
	s.ticker = animation.NewTicker(func(time.Duration) { s.Tick() })
	return s
}

// Offset returns the scroll offset in pixels.
func (s *Scroller) Offset() int { return s.offset }

// CurrentIndex returns the selected index, or NoIndex when empty.
func (s *Scroller) CurrentIndex() int { return s.currentIndex }

// Phase returns the current motion state.
func (s *Scroller) Phase() Phase { return s.phase }

// TargetIndex returns the index a running justify will land on. Outside
// justifying it is CurrentIndex.
func (s *Scroller) TargetIndex() int {
	if s.phase != PhaseJustifying {
		return s.currentIndex
	}
	return IndexForOffset(s.target, s.itemHeight, s.itemSize)
}

// ItemHeight returns the row height in pixels.
func (s *Scroller) ItemHeight() int { return s.itemHeight }

// ItemSize returns the number of entries.
func (s *Scroller) ItemSize() int { return s.itemSize }

// Cyclic reports whether the scroller wraps.
func (s *Scroller) Cyclic() bool { return s.cyclic }

// ItemIndex returns the row the offset falls in, truncated toward zero.
func (s *Scroller) ItemIndex() int { return ItemIndex(s.offset, s.itemHeight) }

// ItemOffset returns the offset past ItemIndex rows.
func (s *Scroller) ItemOffset() int { return ItemOffset(s.offset, s.itemHeight) }

// IsAnimating reports whether a fling or justify is in flight.
func (s *Scroller) IsAnimating() bool { return s.sim != nil }

// SetOnChange installs the index change listener.
func (s *Scroller) SetOnChange(fn ChangeListener) { s.onChange = fn }

// SetOnUpdate installs a callback run whenever the offset moves, so hosts
// can schedule a redraw.
func (s *Scroller) SetOnUpdate(fn func()) { s.onUpdate = fn }

// SetItemHeight changes the row height and stops any motion. The selected
// entry stays selected and the offset moves onto its row at the new height.
func (s *Scroller) SetItemHeight(h int) {
	if h <= 0 || h == s.itemHeight {
		return
	}
	s.stop()
	s.phase = PhaseIdle
	s.tracker.Reset()
	s.itemHeight = h
	s.offset = OffsetForIndex(max(s.currentIndex, 0), h)
	s.notifyChange()
	s.notifyUpdate()
}

// SetItemSize changes the entry count without resetting. Callers normally
// follow it with Reset.
func (s *Scroller) SetItemSize(n int) {
	s.itemSize = n
}

// SetCyclic switches wrapping and resets the scroller.
func (s *Scroller) SetCyclic(cyclic bool) {
	s.cyclic = cyclic
	s.Reset()
}

// Reset stops motion, returns to offset zero and re-announces the selection
// as a change from NoIndex.
func (s *Scroller) Reset() {
	s.stop()
	s.phase = PhaseIdle
	s.tracker.Reset()
	s.offset = 0
	s.currentIndex = NoIndex
	s.notifyChange()
	s.notifyUpdate()
}

// Drag moves the content by a pointer delta in pixels: dragging down
// (positive delta) reveals earlier entries. It reports whether the offset
// changed; false means the wheel is pinned at a bound and the host may hand
// the gesture to an outer scroller.
func (s *Scroller) Drag(delta int) bool {
	s.stop()
	return s.scrollBy(-delta)
}

// Fling starts a decelerating scroll at velocity pixels per second of offset
// change. Bounded scrollers stop at the first bound they hit. Speeds below
// MinFlingVelocity justify immediately.
func (s *Scroller) Fling(velocity float64) {
	s.stop()
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	if s.MaxFlingVelocity > 0 {
		velocity = math.Max(-s.MaxFlingVelocity, math.Min(s.MaxFlingVelocity, velocity))
	}
	if math.Abs(velocity) < s.MinFlingVelocity {
		s.justify()
		return
	}
	s.start(PhaseFlinging, animation.NewFlingSimulation(float64(s.offset), velocity))
}

// Tick advances the active simulation to the current clock reading. It
// returns true while motion continues. When a fling settles the scroller
// justifies; when a justify settles it goes idle.
func (s *Scroller) Tick() bool {
	if s.sim == nil {
		return false
	}
	pos, done := s.sim.Step(animation.Now())
	target := int(math.Round(pos))
	s.scrollBy(target - s.offset)
	if !s.cyclic && s.offset != target {
		// A bound was hit.
		done = true
	}
	if !done {
		return true
	}
	finished := s.phase
	s.stop()
	s.phase = PhaseIdle
	if finished == PhaseFlinging {
		s.justify()
	}
	return s.sim != nil
}

// SetCurrentIndex moves to index, stopping any motion first. Bounded
// scrollers clamp index into range; cyclic scrollers pick the position
// congruent to index that is nearest the current offset. Animated moves use
// the justify slide.
func (s *Scroller) SetCurrentIndex(index int, animated bool) {
	s.stop()
	s.phase = PhaseIdle
	if s.itemSize <= 0 || s.itemHeight <= 0 {
		return
	}
	var target int
	if s.cyclic {
		index = wrap(index, s.itemSize)
		period := s.itemSize * s.itemHeight
		base := OffsetForIndex(index, s.itemHeight)
		k := math.Round(float64(s.offset-base) / float64(period))
		target = base + int(k)*period
	} else {
		index = max(0, min(index, s.itemSize-1))
		target = OffsetForIndex(index, s.itemHeight)
	}
	distance := target - s.offset
	if distance == 0 {
		return
	}
	if animated {
		s.start(PhaseJustifying, s.slide(distance))
		return
	}
	s.scrollBy(distance)
}

// PointerDown stops motion and begins tracking a drag at y.
func (s *Scroller) PointerDown(t time.Time, y float64) {
	s.stop()
	s.tracker.Reset()
	s.tracker.AddPosition(t, y)
	s.lastY = y
	s.phase = PhaseDragging
}

// PointerMove drags by the whole pixels moved since the last event. It
// reports whether the offset changed.
func (s *Scroller) PointerMove(t time.Time, y float64) bool {
	if s.phase != PhaseDragging {
		s.PointerDown(t, y)
		return false
	}
	s.tracker.AddPosition(t, y)
	delta := int(y - s.lastY)
	if delta == 0 {
		return false
	}
	s.lastY += float64(delta)
	return s.scrollBy(-delta)
}

// PointerUp ends the drag and flings with the tracked velocity, or justifies
// when the release is too slow.
func (s *Scroller) PointerUp(t time.Time, y float64) {
	if s.phase != PhaseDragging {
		return
	}
	s.PointerMove(t, y)
	velocity := s.tracker.Velocity()
	s.tracker.Reset()
	s.phase = PhaseIdle
	s.Fling(-velocity)
}

// PointerCancel ends the drag without a fling and justifies in place.
func (s *Scroller) PointerCancel() {
	if s.phase != PhaseDragging {
		return
	}
	s.tracker.Reset()
	s.phase = PhaseIdle
	s.justify()
}

// justify snaps onto the nearest row boundary. Exact boundaries are left
// alone.
func (s *Scroller) justify() {
	h := s.itemHeight
	if h <= 0 {
		return
	}
	if d := justifyDistance(s.offset, h); d != 0 {
		s.start(PhaseJustifying, s.slide(d))
	}
}

// justifyDistance returns how far to move offset to land on a row boundary.
// Residues of exactly half a row round up.
func justifyDistance(offset, h int) int {
	r := offset % h
	switch {
	case r == 0:
		return 0
	case r > 0 && r < h/2:
		return -r
	case r >= h/2:
		return h - r
	case r > -h/2:
		return -r
	default:
		return -h - r
	}
}

func (s *Scroller) slide(distance int) animation.Simulation {
	s.target = s.offset + distance
	from := float64(s.offset)
	if s.JustifySpring != nil {
		return animation.NewSpringSimulation(*s.JustifySpring, from, 0, from+float64(distance))
	}
	return animation.NewTimedScroll(from, float64(distance), JustifyDuration, animation.ViscousFluid)
}

func (s *Scroller) start(phase Phase, sim animation.Simulation) {
	s.sim = sim
	s.phase = phase
	s.ticker.Start()
	s.notifyUpdate()
}

func (s *Scroller) stop() {
	s.sim = nil
	s.ticker.Stop()
	if s.phase != PhaseDragging {
		s.phase = PhaseIdle
	}
}

// scrollBy moves the offset by distance, clamping bounded scrollers, and
// notifies when it moved.
func (s *Scroller) scrollBy(distance int) bool {
	prev := s.offset
	s.offset += distance
	if !s.cyclic {
		maxOffset := max(0, (s.itemSize-1)*s.itemHeight)
		s.offset = max(0, min(s.offset, maxOffset))
	}
	if s.offset == prev {
		return false
	}
	s.notifyChange()
	s.notifyUpdate()
	return true
}

func (s *Scroller) notifyChange() {
	old := s.currentIndex
	next := IndexForOffset(s.offset, s.itemHeight, s.itemSize)
	if old == next {
		return
	}
	s.currentIndex = next
	if s.onChange != nil {
		s.onChange(old, next)
	}
}

func (s *Scroller) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
