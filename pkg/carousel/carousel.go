// Package carousel implements the state model for a horizontally paged
// card carousel: one active item at full scale flanked by scaled-down
// neighbors, driven by drag gestures and an index binding.
//
// The model owns the active index, the in-progress drag offset, and the
// viewport width, and derives every rendering parameter from them. A
// renderer iterates the dataset, asks the model for per-item transforms
// (offset, scale, opacity, stacking order), and repaints whenever the
// model notifies a change:
//
//	state := carousel.New(carousel.Config[Card, string]{
//	    Items: cards,
//	    KeyOf: func(c Card) string { return c.ID },
//	})
//	state.AddListener(func() {
//	    render(state.Transforms())
//	})
//	state.SetViewportWidth(surface.Width)
//
// Drag gestures arrive as a stream of cumulative horizontal
// translations: zero or more [State.DragChanged] calls followed by
// exactly one [State.DragEnded]. Releasing past one fifth of the
// viewport commits a move to the neighboring item; anything less snaps
// back. [BindRecognizer] wires a [gestures.HorizontalDragRecognizer]
// to the model so a pointer-event producer can drive it directly.
//
// The active index is exposed as an [observe.Value] so an external
// owner can both observe drag-resolved changes and write the index
// itself; see [State.Index].
//
// All methods must be called from one logical UI thread. The model
// never blocks and never mutates the dataset it is given.
package carousel

import (
	"fmt"

	"github.com/Pafgz/CardCarousel/pkg/geometry"
	"github.com/Pafgz/CardCarousel/pkg/observe"
	"github.com/Pafgz/CardCarousel/pkg/settings"
)

// DefaultSidesScaling is the scale applied to non-active items when
// Config.SidesScaling is left zero.
const DefaultSidesScaling = 0.86

// neighborGap is the minimum horizontal distance, in pixels, a resting
// neighbor keeps from the centered item.
const neighborGap = 25.0

// animateOffsetKey names the persisted sticky animation flag.
const animateOffsetKey = "cardcarousel.animate_offset"

// Config describes a carousel over items of type E addressed by keys
// of type K.
type Config[E any, K comparable] struct {
	// Items is the dataset. It is externally owned: the model indexes
	// into it but never copies or mutates it.
	Items []E

	// KeyOf maps an item to its stable identity key. Required.
	KeyOf func(E) K

	// InitialIndex selects the item centered at construction.
	// Must be within the dataset; out-of-range values are a caller
	// contract violation and panic.
	InitialIndex int

	// SidesScaling is the scale factor for non-active items, clamped
	// to [0, 1]. Zero selects DefaultSidesScaling.
	SidesScaling float64

	// Looping connects the last and first items as neighbors.
	// It has no effect on datasets with fewer than two items.
	Looping bool

	// DisableDrag prevents drag gestures from changing the index.
	// The index can still change through the binding, Advance, and
	// Retreat.
	DisableDrag bool

	// Settings stores the sticky "animate offset changes" flag.
	// Nil selects the process-wide settings.Default store.
	Settings settings.Store
}

// New validates cfg and builds the carousel state.
//
// New panics when KeyOf is missing or InitialIndex is out of range:
// both indicate a programmer error, not a recoverable condition. An
// empty dataset with InitialIndex 0 is legal; every query then reports
// the degraded no-active-item values.
func New[E any, K comparable](cfg Config[E, K]) *State[E, K] {
	if cfg.KeyOf == nil {
		panic("carousel: Config.KeyOf is required")
	}
	count := len(cfg.Items)
	if cfg.InitialIndex < 0 || (count == 0 && cfg.InitialIndex != 0) || (count > 0 && cfg.InitialIndex >= count) {
		panic(fmt.Sprintf("carousel: initial index %d out of range for %d items", cfg.InitialIndex, count))
	}

	scaling := cfg.SidesScaling
	if scaling == 0 {
		scaling = DefaultSidesScaling
	}
	scaling = geometry.Clamp(scaling, 0, 1)

	store := cfg.Settings
	if store == nil {
		store = settings.Default
	}
	animate, _ := store.Bool(animateOffsetKey)

	s := &State[E, K]{
		items:         cfg.Items,
		keyOf:         cfg.KeyOf,
		sidesScaling:  scaling,
		looping:       cfg.Looping,
		canMove:       !cfg.DisableDrag,
		store:         store,
		shouldAnimate: animate,
		activeIndex:   cfg.InitialIndex,
		index:         observe.NewValue(cfg.InitialIndex),
		listeners:     make(map[int]func()),
	}

	// Every write to the binding, internal or external, lands here and
	// runs the same didSet side effects.
	s.index.AddListener(s.applyIndex)

	return s
}
