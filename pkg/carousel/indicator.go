package carousel

// Indicator describes a dot-row page indicator: one dot per item with
// the active item's dot highlighted.
type Indicator struct {
	// Count is the number of dots.
	Count int
	// Active is the highlighted dot index, or -1 when no item is
	// active (empty dataset or out-of-range external index).
	Active int
}

// Indicator derives the page indicator for the current state.
func (s *State[E, K]) Indicator() Indicator {
	active := s.activeIndex
	if active < 0 || active >= len(s.items) {
		active = -1
	}
	return Indicator{
		Count:  len(s.items),
		Active: active,
	}
}
