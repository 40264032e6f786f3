package carousel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Pafgz/CardCarousel/pkg/geometry"
	"github.com/Pafgz/CardCarousel/pkg/settings"
)

func TestTransforms_FullSetAtRest(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2, SidesScaling: 0.86})
	s.SetViewportWidth(300)

	got := s.Transforms()
	want := []ItemTransform[string]{
		{Key: "A", Offset: geometry.Offset{}, Scale: 0.86, Opacity: 0, ZIndex: -1},
		{Key: "B", Offset: geometry.Offset{X: -25}, Scale: 0.86, Opacity: 1, ZIndex: 0},
		{Key: "C", Offset: geometry.Offset{}, Scale: 1, Opacity: 1, ZIndex: 1},
		{Key: "D", Offset: geometry.Offset{X: 25}, Scale: 0.86, Opacity: 1, ZIndex: 0},
		{Key: "E", Offset: geometry.Offset{}, Scale: 0.86, Opacity: 0, ZIndex: -1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transforms() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransforms_MidDrag(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})
	s.SetViewportWidth(300) // third = 100
	s.DragChanged(-60)

	got := s.Transforms()

	// Active tracks the drag, previous keeps its floor, next follows.
	if got[2].Offset.X != -60 {
		t.Errorf("active offset = %v, want -60", got[2].Offset.X)
	}
	if got[1].Offset.X != -60 {
		t.Errorf("previous offset = %v, want -60", got[1].Offset.X)
	}
	if got[3].Offset.X != 25 {
		t.Errorf("next offset = %v, want 25 floor", got[3].Offset.X)
	}
}

func TestTransforms_LoopingWrapsNeighborsInSet(t *testing.T) {
	s := letters(Config[string, string]{Looping: true})
	s.SetViewportWidth(300)

	got := s.Transforms()

	// Index 0 active: E is the wrapped previous neighbor.
	if got[4].Opacity != 1 || got[4].ZIndex != 0 {
		t.Errorf("wrapped previous transform = %+v, want visible neighbor", got[4])
	}
	if got[4].Offset.X != -25 {
		t.Errorf("wrapped previous offset = %v, want -25", got[4].Offset.X)
	}
}

func TestItemTransformLerp(t *testing.T) {
	a := ItemTransform[string]{Key: "C", Offset: geometry.Offset{X: -100}, Scale: 1, Opacity: 1, ZIndex: 1}
	b := ItemTransform[string]{Key: "C", Offset: geometry.Offset{X: 0}, Scale: 0.86, Opacity: 0, ZIndex: 0}

	mid := a.Lerp(b, 0.5)
	if mid.Offset.X != -50 {
		t.Errorf("mid offset = %v, want -50", mid.Offset.X)
	}
	if math.Abs(mid.Scale-0.93) > 1e-9 {
		t.Errorf("mid scale = %v, want 0.93", mid.Scale)
	}
	if mid.Opacity != 0.5 {
		t.Errorf("mid opacity = %v, want 0.5", mid.Opacity)
	}
	if mid.ZIndex != 0 {
		t.Errorf("mid zIndex = %d, want destination 0 at t=0.5", mid.ZIndex)
	}

	early := a.Lerp(b, 0.25)
	if early.ZIndex != 1 {
		t.Errorf("early zIndex = %d, want source 1 before midpoint", early.ZIndex)
	}
}

func TestTweenTransforms_AnimatesBetweenSets(t *testing.T) {
	store := settings.NewMemory()
	s := letters(Config[string, string]{InitialIndex: 2, Settings: store})
	s.SetViewportWidth(300)

	before := s.Transforms()
	s.DragChanged(90)
	after := s.Transforms()

	tw := TweenTransforms(before, after)

	if diff := cmp.Diff(before, tw.Evaluate(0)); diff != "" {
		t.Errorf("tween at 0 differs from begin set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(after, tw.Evaluate(1)); diff != "" {
		t.Errorf("tween at 1 differs from end set (-want +got):\n%s", diff)
	}

	mid := tw.Evaluate(0.5)
	if mid[2].Offset.X != 45 {
		t.Errorf("mid active offset = %v, want 45", mid[2].Offset.X)
	}
}

func TestLerpTransforms_MismatchedSetsFallToEnd(t *testing.T) {
	a := []ItemTransform[string]{{Key: "A"}}
	b := []ItemTransform[string]{{Key: "A"}, {Key: "B"}}
	got := LerpTransforms(a, b, 0.5)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("mismatched lerp did not return end set (-want +got):\n%s", diff)
	}
}

func TestListener_FiresOnMutations(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 2})

	calls := 0
	unsub := s.AddListener(func() { calls++ })

	s.SetViewportWidth(300) // change: fires
	s.SetViewportWidth(300) // no change: silent
	s.DragChanged(10)       // fires
	s.DragEnded(10)         // index assignment fires
	if calls != 3 {
		t.Errorf("listener fired %d times, want 3", calls)
	}

	unsub()
	s.DragChanged(5)
	if calls != 3 {
		t.Errorf("listener fired after unsubscribe (%d calls)", calls)
	}
}

func TestIndicator(t *testing.T) {
	s := letters(Config[string, string]{InitialIndex: 3})
	got := s.Indicator()
	if got.Count != 5 || got.Active != 3 {
		t.Errorf("Indicator = %+v, want {Count:5 Active:3}", got)
	}

	empty := letters(Config[string, string]{Items: []string{}})
	got = empty.Indicator()
	if got.Count != 0 || got.Active != -1 {
		t.Errorf("empty Indicator = %+v, want {Count:0 Active:-1}", got)
	}
}
