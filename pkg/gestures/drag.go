package gestures

import (
	"math"
	"time"

	"github.com/Pafgz/CardCarousel/pkg/animation"
	"github.com/Pafgz/CardCarousel/pkg/geometry"
)

// HorizontalDragRecognizer recognizes horizontal drags from a pointer
// event stream. The gesture is accepted once horizontal movement
// exceeds the touch slop while dominating vertical movement; a
// vertically dominant move rejects the gesture so scrollable content
// above or below the carousel can claim it.
type HorizontalDragRecognizer struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	pointer  int64           // current pointer being tracked
	start    geometry.Offset // initial touch position
	last     geometry.Offset // most recent touch position
	lastTime time.Time       // timestamp of last update (for velocity)
	velocity float64         // smoothed horizontal velocity in pixels/second
	slop     float64         // minimum distance before recognizing a drag
	tracking bool            // true between AddPointer and up/cancel
	accepted bool            // true once the drag is recognized
	reject   bool            // true if the gesture was rejected
	started  bool            // true after OnStart has been called
}

// NewHorizontalDragRecognizer creates a recognizer with the default
// touch slop.
func NewHorizontalDragRecognizer() *HorizontalDragRecognizer {
	return &HorizontalDragRecognizer{slop: DefaultTouchSlop}
}

// AddPointer begins tracking a pointer from its down event.
func (h *HorizontalDragRecognizer) AddPointer(event PointerEvent) {
	h.pointer = event.PointerID
	h.start = event.Position
	h.last = event.Position
	h.lastTime = animation.Now()
	h.velocity = 0
	if h.slop == 0 {
		h.slop = DefaultTouchSlop
	}
	h.tracking = true
	h.accepted = false
	h.reject = false
	h.started = false
}

// HandleEvent processes a move, up, or cancel event for the tracked
// pointer. Events for other pointers are ignored.
func (h *HorizontalDragRecognizer) HandleEvent(event PointerEvent) {
	if !h.tracking || event.PointerID != h.pointer || h.reject {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		h.handleMove(event)
	case PointerPhaseUp:
		h.handleUp(event)
	case PointerPhaseCancel:
		h.handleCancel()
	}
}

// IsActive reports whether a recognized drag is in progress.
func (h *HorizontalDragRecognizer) IsActive() bool {
	return h.tracking && h.accepted
}

func (h *HorizontalDragRecognizer) handleMove(event PointerEvent) {
	now := animation.Now()
	dt := now.Sub(h.lastTime).Seconds()

	total := event.Position.Sub(h.start)
	primary := math.Abs(total.X)
	orthogonal := math.Abs(total.Y)

	// Decide acceptance once slop is exceeded.
	if !h.accepted {
		if primary > h.slop && primary >= orthogonal {
			h.accepted = true
			h.ensureStarted()
		} else if orthogonal > h.slop {
			// Vertical movement dominant: likely a scroll, not ours.
			h.reject = true
			return
		}
	}

	// Update velocity using exponential smoothing.
	delta := event.Position.Sub(h.last)
	if dt > 0 {
		inst := delta.X / dt
		h.velocity = h.velocity*0.8 + inst*0.2
	}

	if h.accepted && h.OnUpdate != nil {
		h.OnUpdate(DragUpdateDetails{
			Position:    event.Position,
			Delta:       delta,
			Translation: total,
		})
	}

	h.last = event.Position
	h.lastTime = now
}

func (h *HorizontalDragRecognizer) handleUp(event PointerEvent) {
	h.tracking = false
	if !h.accepted {
		return
	}
	if h.OnEnd != nil {
		h.OnEnd(DragEndDetails{
			Position:        event.Position,
			Translation:     event.Position.Sub(h.start),
			PrimaryVelocity: h.velocity,
		})
	}
}

func (h *HorizontalDragRecognizer) handleCancel() {
	h.tracking = false
	if h.accepted && h.OnCancel != nil {
		h.OnCancel()
	}
	h.reject = true
}

func (h *HorizontalDragRecognizer) ensureStarted() {
	if h.started {
		return
	}
	h.started = true
	if h.OnStart != nil {
		h.OnStart(DragStartDetails{Position: h.start})
	}
}
