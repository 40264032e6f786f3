package carousel

import (
	"github.com/Pafgz/CardCarousel/pkg/observe"
	"github.com/Pafgz/CardCarousel/pkg/settings"
)

// State is the carousel state model. It is NOT thread-safe: all access
// must happen on one logical UI thread.
type State[E any, K comparable] struct {
	items        []E
	keyOf        func(E) K
	sidesScaling float64
	looping      bool
	canMove      bool
	store        settings.Store

	index         *observe.Value[int]
	activeIndex   int
	dragOffset    float64
	viewportWidth float64
	dragging      bool
	shouldAnimate bool

	listeners      map[int]func()
	nextListenerID int
}

// Count returns the number of items in the dataset.
func (s *State[E, K]) Count() int {
	return len(s.items)
}

// ActiveIndex returns the index of the currently centered item.
func (s *State[E, K]) ActiveIndex() int {
	return s.activeIndex
}

// DragOffset returns the horizontal displacement of the in-progress
// drag, or 0 when idle.
func (s *State[E, K]) DragOffset() float64 {
	return s.dragOffset
}

// Dragging reports whether a drag gesture is in progress.
func (s *State[E, K]) Dragging() bool {
	return s.dragging
}

// Looping reports whether the wrap-around neighbor policy is enabled.
func (s *State[E, K]) Looping() bool {
	return s.looping
}

// Index returns the two-way index binding. External owners write the
// index through Set and observe every assignment — drag-resolved or
// external, including same-value echoes — through AddListener. The
// model is the authority for drag-resolved writes; external writes
// pass through unvalidated, and out-of-range values degrade queries to
// their no-active-item results rather than failing.
func (s *State[E, K]) Index() *observe.Value[int] {
	return s.index
}

// AddListener registers a callback that fires after every state
// mutation that can change the transform set. Returns an unsubscribe
// function.
func (s *State[E, K]) AddListener(fn func()) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// SetViewportWidth records the rendering surface width used for offset
// capping and the drag commit threshold. The presentation layer calls
// it on every layout pass; only an actual change notifies listeners.
func (s *State[E, K]) SetViewportWidth(w float64) {
	if s.viewportWidth == w {
		return
	}
	s.viewportWidth = w
	s.notify()
}

// ViewportWidth returns the recorded rendering surface width.
func (s *State[E, K]) ViewportWidth() float64 {
	return s.viewportWidth
}

// DragChanged records the cumulative horizontal translation of an
// in-progress drag. The raw value is stored uncapped; per-item capping
// happens in ItemOffset. No-op when drag is disabled.
func (s *State[E, K]) DragChanged(translationX float64) {
	if !s.canMove {
		return
	}
	s.markAnimate()
	s.dragging = true
	s.dragOffset = translationX
	s.notify()
}

// DragEnded terminates a drag gesture, resets the drag offset, and
// resolves the final translation into an index transition: past one
// fifth of the viewport commits a single-step move, resolved through
// the wrap policy. No-op when drag is disabled.
func (s *State[E, K]) DragEnded(translationX float64) {
	if !s.canMove {
		return
	}
	s.dragging = false
	s.dragOffset = 0

	count := len(s.items)
	if count == 0 {
		s.notify()
		return
	}

	threshold := s.viewportWidth / 5
	candidate := s.activeIndex
	if translationX > threshold {
		candidate--
	}
	if translationX < -threshold {
		candidate++
	}
	s.index.Set(s.resolve(candidate))
}

// Advance moves one item forward under the wrap policy. Unlike drag
// commands it works even when drag is disabled. No-op on an empty
// dataset.
func (s *State[E, K]) Advance() {
	if len(s.items) == 0 {
		return
	}
	s.index.Set(s.resolve(s.activeIndex + 1))
}

// Retreat moves one item backward under the wrap policy. Unlike drag
// commands it works even when drag is disabled. No-op on an empty
// dataset.
func (s *State[E, K]) Retreat() {
	if len(s.items) == 0 {
		return
	}
	s.index.Set(s.resolve(s.activeIndex - 1))
}

// OffsetAnimationEnabled reports whether offset changes should be
// visually interpolated. Without looping, animation is always on. With
// looping, it stays off until the first drag or index change so the
// initial render does not play an unwanted snap.
func (s *State[E, K]) OffsetAnimationEnabled() bool {
	if !s.looping {
		return true
	}
	return s.shouldAnimate
}

// resolve maps a candidate index onto a valid one. Overshooting the
// ends wraps when looping and saturates at the boundary otherwise.
func (s *State[E, K]) resolve(candidate int) int {
	count := len(s.items)
	if candidate > count-1 {
		if s.looping {
			return 0
		}
		return count - 1
	}
	if candidate < 0 {
		if s.looping {
			return count - 1
		}
		return 0
	}
	return candidate
}

// applyIndex runs the didSet side effects shared by every index
// assignment: store the value, arm the sticky animation flag, notify
// renderers. The outward echo to binding listeners has already
// happened inside observe.Value.Set.
func (s *State[E, K]) applyIndex(i int) {
	s.activeIndex = i
	s.markAnimate()
	s.notify()
}

// markAnimate arms the sticky animation flag and persists it.
// The settings write is best effort: the model has no recovery path
// and the flag only gates a cosmetic first-render snap.
func (s *State[E, K]) markAnimate() {
	if s.shouldAnimate {
		return
	}
	s.shouldAnimate = true
	_ = s.store.SetBool(animateOffsetKey, true)
}

func (s *State[E, K]) notify() {
	for _, listener := range s.listeners {
		listener()
	}
}
