package carousel

import (
	"time"

	"github.com/Pafgz/CardCarousel/pkg/animation"
)

// autoPlayTarget is the slice of State the auto-player drives.
type autoPlayTarget interface {
	Advance()
	Dragging() bool
}

// AutoPlayer advances a carousel one item at a fixed interval. It is
// frame-driven: the host calls Step once per frame and the player
// consults the animation clock, so tests can drive it with a fake
// clock. While a drag is in progress the schedule is pushed back
// rather than fighting the user's finger.
type AutoPlayer struct {
	target   autoPlayTarget
	interval time.Duration
	running  bool
	next     time.Time
}

// NewAutoPlayer creates a stopped player that advances target every
// interval.
func NewAutoPlayer[E any, K comparable](target *State[E, K], interval time.Duration) *AutoPlayer {
	return &AutoPlayer{target: target, interval: interval}
}

// Start schedules the first advance one interval from now.
func (p *AutoPlayer) Start() {
	if p.running {
		return
	}
	p.running = true
	p.next = animation.Now().Add(p.interval)
}

// Stop halts auto-play. The schedule restarts fresh on the next Start.
func (p *AutoPlayer) Stop() {
	p.running = false
}

// Running reports whether the player is active.
func (p *AutoPlayer) Running() bool {
	return p.running
}

// Step advances the carousel if the interval has elapsed. Call once
// per frame while the carousel is on screen.
func (p *AutoPlayer) Step() {
	if !p.running {
		return
	}
	now := animation.Now()
	if p.target.Dragging() {
		p.next = now.Add(p.interval)
		return
	}
	if now.Before(p.next) {
		return
	}
	p.target.Advance()
	p.next = now.Add(p.interval)
}
