// Package anim holds the per-pattern state advanced once per frame tick.
package anim

// Reveal tracks how many segments of a progressively drawn pattern are
// visible. Index only grows and never passes Total.
type Reveal struct {
	Index int
	Total int
}

// NewReveal starts a reveal of total segments with nothing visible.
func NewReveal(total int) *Reveal {
	return &Reveal{Total: max(0, total)}
}

// Tick reveals one more segment. The frame time does not change the rate.
func (r *Reveal) Tick(dt float64) {
	if r.Index < r.Total {
		r.Index++
	}
}

// Done reports whether every segment is visible.
func (r *Reveal) Done() bool {
	return r.Index >= r.Total
}

// Reset restarts the reveal for a new total.
func (r *Reveal) Reset(total int) {
	r.Index = 0
	r.Total = max(0, total)
}

// Fraction returns the visible share in [0, 1].
func (r *Reveal) Fraction() float64 {
	if r.Total == 0 {
		return 1
	}
	return float64(r.Index) / float64(r.Total)
}
