package carousel

import (
	"testing"

	"github.com/Pafgz/CardCarousel/pkg/geometry"
	"github.com/Pafgz/CardCarousel/pkg/gestures"
	cartest "github.com/Pafgz/CardCarousel/pkg/testing"
)

func TestBindRecognizer_SwipeCommitsIndexChange(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})
	s.SetViewportWidth(500) // threshold = 100

	rec := gestures.NewHorizontalDragRecognizer()
	BindRecognizer(s, rec)
	sim := &cartest.DragSimulator{Recognizer: rec, Steps: 5}

	var offsets []float64
	s.AddListener(func() { offsets = append(offsets, s.DragOffset()) })

	sim.Drag(geometry.Offset{X: 400, Y: 300}, geometry.Offset{X: -160})

	if got := s.ActiveIndex(); got != 3 {
		t.Errorf("index after swipe = %d, want 3", got)
	}
	if got := s.DragOffset(); got != 0 {
		t.Errorf("DragOffset after swipe = %v, want 0", got)
	}
	if len(offsets) == 0 {
		t.Fatal("no change notifications during the swipe")
	}
	// Updates grew leftward; the final notification is the settled state.
	if offsets[len(offsets)-1] != 0 {
		t.Errorf("final notified DragOffset = %v, want 0", offsets[len(offsets)-1])
	}
}

func TestBindRecognizer_ShortSwipeSnapsBack(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})
	s.SetViewportWidth(500)

	rec := gestures.NewHorizontalDragRecognizer()
	BindRecognizer(s, rec)
	sim := &cartest.DragSimulator{Recognizer: rec, Steps: 3}

	sim.Drag(geometry.Offset{X: 250, Y: 300}, geometry.Offset{X: -60})

	if got := s.ActiveIndex(); got != 2 {
		t.Errorf("index after short swipe = %d, want 2 (below threshold)", got)
	}
	if got := s.DragOffset(); got != 0 {
		t.Errorf("DragOffset after short swipe = %v, want 0", got)
	}
}

func TestBindRecognizer_CancelResetsWithoutIndexChange(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})
	s.SetViewportWidth(500)

	rec := gestures.NewHorizontalDragRecognizer()
	BindRecognizer(s, rec)
	sim := &cartest.DragSimulator{Recognizer: rec, Steps: 4}

	sim.DragAndCancel(geometry.Offset{X: 250, Y: 300}, geometry.Offset{X: -200})

	if got := s.ActiveIndex(); got != 2 {
		t.Errorf("index after cancelled drag = %d, want 2", got)
	}
	if got := s.DragOffset(); got != 0 {
		t.Errorf("DragOffset after cancelled drag = %v, want 0 (no stuck visual state)", got)
	}
	if s.Dragging() {
		t.Error("model still dragging after cancel")
	}
}

func TestBindRecognizer_VerticalSwipeIgnored(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})
	s.SetViewportWidth(500)

	rec := gestures.NewHorizontalDragRecognizer()
	BindRecognizer(s, rec)
	sim := &cartest.DragSimulator{Recognizer: rec, Steps: 4}

	sim.Drag(geometry.Offset{X: 250, Y: 100}, geometry.Offset{Y: 200})

	if got := s.ActiveIndex(); got != 2 {
		t.Errorf("vertical swipe changed the index to %d", got)
	}
	if got := s.DragOffset(); got != 0 {
		t.Errorf("vertical swipe left DragOffset = %v", got)
	}
}
