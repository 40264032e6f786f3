package carousel

import "github.com/Pafgz/CardCarousel/pkg/gestures"

// BindRecognizer wires a horizontal drag recognizer to the state
// model: updates forward the cumulative translation, the end event
// resolves the index transition, and a cancel delivers a terminating
// zero-translation end so the visual state never sticks mid-drag.
func BindRecognizer[E any, K comparable](s *State[E, K], r *gestures.HorizontalDragRecognizer) {
	r.OnUpdate = func(d gestures.DragUpdateDetails) {
		s.DragChanged(d.Translation.X)
	}
	r.OnEnd = func(d gestures.DragEndDetails) {
		s.DragEnded(d.Translation.X)
	}
	r.OnCancel = func() {
		s.DragEnded(0)
	}
}
