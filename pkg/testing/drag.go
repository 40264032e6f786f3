package testing

import (
	"github.com/Pafgz/CardCarousel/pkg/geometry"
	"github.com/Pafgz/CardCarousel/pkg/gestures"
)

// nextPointerID is incremented for each simulated gesture to avoid
// pointer collisions across simulators.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// DragSimulator feeds synthetic pointer events into a drag recognizer,
// standing in for the platform input layer during tests.
type DragSimulator struct {
	Recognizer *gestures.HorizontalDragRecognizer
	// Steps is the number of intermediate move events per drag.
	// Zero means a single move straight to the end position.
	Steps int
}

// Drag simulates a full gesture from start by delta: down, moves, up.
func (s *DragSimulator) Drag(start, delta geometry.Offset) {
	id := s.begin(start)
	s.moveBy(id, start, delta)
	end := start.Add(delta)
	s.Recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: id,
		Position:  end,
		Phase:     gestures.PointerPhaseUp,
	})
}

// DragAndCancel simulates a gesture that is cancelled mid-flight.
func (s *DragSimulator) DragAndCancel(start, delta geometry.Offset) {
	id := s.begin(start)
	s.moveBy(id, start, delta)
	s.Recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: id,
		Position:  start.Add(delta),
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (s *DragSimulator) begin(start geometry.Offset) int64 {
	id := allocPointerID()
	s.Recognizer.AddPointer(gestures.PointerEvent{
		PointerID: id,
		Position:  start,
		Phase:     gestures.PointerPhaseDown,
	})
	return id
}

func (s *DragSimulator) moveBy(id int64, start, delta geometry.Offset) {
	steps := s.Steps
	if steps < 1 {
		steps = 1
	}
	prev := start
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := geometry.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		s.Recognizer.HandleEvent(gestures.PointerEvent{
			PointerID: id,
			Position:  pos,
			Delta:     pos.Sub(prev),
			Phase:     gestures.PointerPhaseMove,
		})
		prev = pos
	}
}
