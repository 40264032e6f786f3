package carousel

import (
	"math"

	"github.com/Pafgz/CardCarousel/pkg/animation"
	"github.com/Pafgz/CardCarousel/pkg/geometry"
)

// ItemTransform is the full visual transform of one item: everything a
// renderer needs to place, scale, fade, and stack it.
type ItemTransform[K comparable] struct {
	Key     K
	Offset  geometry.Offset
	Scale   float64
	Opacity float64
	ZIndex  int
}

// ActiveItem returns the item at the active index, or false when the
// index is out of bounds (empty dataset or an unvalidated external
// write).
func (s *State[E, K]) ActiveItem() (E, bool) {
	if s.activeIndex < 0 || s.activeIndex >= len(s.items) {
		var zero E
		return zero, false
	}
	return s.items[s.activeIndex], true
}

// PreviousItem returns the left-hand neighbor of the active item.
// At index 0 it wraps to the last item when looping (and the dataset
// has at least two items), otherwise there is none.
func (s *State[E, K]) PreviousItem() (E, bool) {
	var zero E
	count := len(s.items)
	if s.activeIndex == 0 {
		if s.looping && count > 1 {
			return s.items[count-1], true
		}
		return zero, false
	}
	if s.activeIndex < 1 || s.activeIndex >= count {
		return zero, false
	}
	return s.items[s.activeIndex-1], true
}

// NextItem returns the right-hand neighbor of the active item.
// At the last index it wraps to the first item when looping (and the
// dataset has at least two items), otherwise there is none.
func (s *State[E, K]) NextItem() (E, bool) {
	var zero E
	count := len(s.items)
	if s.activeIndex == count-1 && count > 0 {
		if s.looping && count > 1 {
			return s.items[0], true
		}
		return zero, false
	}
	if s.activeIndex < 0 || s.activeIndex+1 >= count {
		return zero, false
	}
	return s.items[s.activeIndex+1], true
}

// IsActive reports whether item is the currently centered one,
// compared by identity key.
func (s *State[E, K]) IsActive(item E) bool {
	active, ok := s.ActiveItem()
	return ok && s.keyOf(item) == s.keyOf(active)
}

// IsPrevious reports whether item is the left-hand neighbor.
func (s *State[E, K]) IsPrevious(item E) bool {
	prev, ok := s.PreviousItem()
	return ok && s.keyOf(item) == s.keyOf(prev)
}

// IsNext reports whether item is the right-hand neighbor.
func (s *State[E, K]) IsNext(item E) bool {
	next, ok := s.NextItem()
	return ok && s.keyOf(item) == s.keyOf(next)
}

// Scale returns the scale factor for item: 1.0 for the active item,
// the configured sides scaling for every other item, and 0 for all
// items when no active item exists.
func (s *State[E, K]) Scale(item E) float64 {
	active, ok := s.ActiveItem()
	if !ok {
		return 0
	}
	if s.keyOf(item) == s.keyOf(active) {
		return 1
	}
	return s.sidesScaling
}

// Opacity returns 1 for the active item and its immediate neighbors
// and 0 for everything else, so at most three items are ever visible.
func (s *State[E, K]) Opacity(item E) float64 {
	if s.IsActive(item) || s.IsPrevious(item) || s.IsNext(item) {
		return 1
	}
	return 0
}

// ZIndex returns the stacking order for item: the active item above
// its neighbors, neighbors above hidden items.
func (s *State[E, K]) ZIndex(item E) int {
	switch {
	case s.IsActive(item):
		return 1
	case s.IsPrevious(item), s.IsNext(item):
		return 0
	default:
		return -1
	}
}

// ItemOffset returns the horizontal placement offset for item during a
// drag. Resting neighbors sit neighborGap pixels from center and track
// the drag once it exceeds that; the active item tracks the drag up to
// one third of the viewport; hidden items do not move.
func (s *State[E, K]) ItemOffset(item E) float64 {
	switch {
	case s.IsPrevious(item):
		return math.Min(-neighborGap, s.dragOffset)
	case s.IsNext(item):
		return math.Max(s.dragOffset, neighborGap)
	case s.IsActive(item):
		third := s.viewportWidth / 3
		if s.dragOffset > 0 {
			return math.Min(third, s.dragOffset)
		}
		return math.Max(-third, s.dragOffset)
	default:
		return 0
	}
}

// Transforms recomputes the transform set for the whole dataset, in
// dataset order. Renderers call it after every change notification and
// repaint from the result.
func (s *State[E, K]) Transforms() []ItemTransform[K] {
	transforms := make([]ItemTransform[K], len(s.items))
	for i, item := range s.items {
		transforms[i] = ItemTransform[K]{
			Key:     s.keyOf(item),
			Offset:  geometry.Offset{X: s.ItemOffset(item)},
			Scale:   s.Scale(item),
			Opacity: s.Opacity(item),
			ZIndex:  s.ZIndex(item),
		}
	}
	return transforms
}

// Lerp interpolates between two transforms of the same item at
// progress t. The key is taken from the destination.
func (a ItemTransform[K]) Lerp(b ItemTransform[K], t float64) ItemTransform[K] {
	zIndex := a.ZIndex
	if t >= 0.5 {
		zIndex = b.ZIndex
	}
	return ItemTransform[K]{
		Key:     b.Key,
		Offset:  animation.LerpOffset(a.Offset, b.Offset, t),
		Scale:   animation.LerpFloat64(a.Scale, b.Scale, t),
		Opacity: animation.LerpFloat64(a.Opacity, b.Opacity, t),
		ZIndex:  zIndex,
	}
}

// LerpTransforms interpolates two equally sized transform sets
// pairwise. Renderers use it to animate between the set captured
// before a mutation and the one after, gated on
// [State.OffsetAnimationEnabled].
func LerpTransforms[K comparable](a, b []ItemTransform[K], t float64) []ItemTransform[K] {
	if len(a) != len(b) {
		return b
	}
	out := make([]ItemTransform[K], len(b))
	for i := range b {
		out[i] = a[i].Lerp(b[i], t)
	}
	return out
}

// TweenTransforms creates a tween between two transform sets.
func TweenTransforms[K comparable](begin, end []ItemTransform[K]) *animation.Tween[[]ItemTransform[K]] {
	return &animation.Tween[[]ItemTransform[K]]{
		Begin: begin,
		End:   end,
		Lerp:  LerpTransforms[K],
	}
}
