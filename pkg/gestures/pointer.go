// Package gestures turns raw pointer events into the horizontal drag
// stream the carousel model consumes: zero or more updates carrying the
// cumulative translation, then exactly one end or cancel.
package gestures

import "github.com/Pafgz/CardCarousel/pkg/geometry"

// PointerPhase identifies the stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the initial touch or button press.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is movement while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp is the release.
	PointerPhaseUp
	// PointerPhaseCancel is an aborted gesture (e.g. the system took over).
	PointerPhaseCancel
)

// PointerEvent is a single raw input event in viewport coordinates.
type PointerEvent struct {
	PointerID int64
	Position  geometry.Offset
	Delta     geometry.Offset
	Phase     PointerPhase
}

// DefaultTouchSlop is the distance a pointer must travel before a drag
// is recognized, in logical pixels.
const DefaultTouchSlop = 18.0

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is the location of the initial touch.
	Position geometry.Offset
}

// DragUpdateDetails describes one step of an active drag.
type DragUpdateDetails struct {
	// Position is the current pointer location.
	Position geometry.Offset
	// Delta is the movement since the previous event.
	Delta geometry.Offset
	// Translation is the cumulative movement since the gesture began.
	Translation geometry.Offset
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Position is the pointer location at release.
	Position geometry.Offset
	// Translation is the total movement over the whole gesture.
	Translation geometry.Offset
	// PrimaryVelocity is the smoothed horizontal velocity in pixels
	// per second at release.
	PrimaryVelocity float64
}
