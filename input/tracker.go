// Package input turns raw pointer events into player target requests.
// It knows nothing about the windowing or terminal library delivering them.
package input

import "goblinescape/game"

// Target receives target requests. *game.Session satisfies it.
type Target interface {
	PointerDown(p game.Point2D)
	PointerMove(p game.Point2D)
}

// Tracker implements drag steering: pressing sets a target, moving with the
// button held keeps updating it, releasing stops the updates.
type Tracker struct {
	target   Target
	dragging bool
	last     game.Point2D
}

// NewTracker creates a tracker forwarding to target
func NewTracker(target Target) *Tracker {
	return &Tracker{target: target}
}

// Down starts a drag at p
func (t *Tracker) Down(p game.Point2D) {
	t.dragging = true
	t.last = p
	t.target.PointerDown(p)
}

// Move forwards p while dragging. Repeated positions are dropped.
func (t *Tracker) Move(p game.Point2D) {
	if !t.dragging || p == t.last {
		return
	}
	t.last = p
	t.target.PointerMove(p)
}

// Up ends the drag
func (t *Tracker) Up() {
	t.dragging = false
}

// Dragging reports whether a drag is in progress
func (t *Tracker) Dragging() bool {
	return t.dragging
}
