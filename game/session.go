package game

import "time"

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so frame deltas are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// OutcomeSink is told about every finished round. snap is the state after
// the reset.
type OutcomeSink interface {
	RoundResolved(outcome Outcome, snap Snapshot)
}

// OutcomeFunc adapts a function to OutcomeSink
type OutcomeFunc func(outcome Outcome, snap Snapshot)

// RoundResolved calls f
func (f OutcomeFunc) RoundResolved(outcome Outcome, snap Snapshot) { f(outcome, snap) }

// Session is the application context a host drives once per frame. It owns
// the game state and the collaborators the core needs. Input arrives at any
// time but is applied only at the next frame boundary; the session never
// schedules itself.
type Session struct {
	state *State
	clock Clock
	sink  OutcomeSink

	lastFrame time.Time
	hasFrame  bool

	pending    Point2D
	hasPending bool

	last Snapshot
}

// NewSession creates a session. A nil clock uses the system clock; a nil
// sink drops outcomes.
func NewSession(state *State, clock Clock, sink OutcomeSink) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		state: state,
		clock: clock,
		sink:  sink,
	}
	s.last = state.Snapshot()
	return s
}

// State exposes the underlying game state
func (s *Session) State() *State { return s.state }

// PointerDown requests a new player target
func (s *Session) PointerDown(p Point2D) { s.queue(p) }

// PointerMove requests a new player target
func (s *Session) PointerMove(p Point2D) { s.queue(p) }

func (s *Session) queue(p Point2D) {
	// Latest request wins
	s.pending = p
	s.hasPending = true
}

// Resize fits the lake to a new surface size. It reports whether the lake changed.
func (s *Session) Resize(width, height float64) bool {
	if !s.state.Recenter(width, height) {
		return false
	}
	s.last = s.state.Snapshot()
	return true
}

// Resync forgets the previous frame time so the next frame advances by zero.
// Hosts call it after pausing the frame loop.
func (s *Session) Resync() {
	s.hasFrame = false
}

// Last returns the snapshot produced by the most recent frame
func (s *Session) Last() Snapshot { return s.last }

// Frame runs one frame: apply pending input, advance both actors by the
// clamped elapsed time, evaluate the round and report an outcome.
func (s *Session) Frame() Snapshot {
	dt := s.elapsed()

	if s.hasPending {
		s.state.SetPlayerTarget(s.pending)
		s.hasPending = false
	}

	snap := s.state.Tick(float64(dt) / float64(time.Millisecond))
	s.last = snap

	if snap.Status.IsResolved() && s.sink != nil {
		s.sink.RoundResolved(snap.Status.Outcome, snap)
	}
	return snap
}

// elapsed returns the time since the previous frame, capped at MaxFrameDelta
func (s *Session) elapsed() time.Duration {
	now := s.clock.Now()
	if !s.hasFrame {
		s.lastFrame = now
		s.hasFrame = true
		return 0
	}
	dt := now.Sub(s.lastFrame)
	s.lastFrame = now

	if dt < 0 {
		return 0
	}
	if limit := s.state.tuning.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}
	return dt
}
