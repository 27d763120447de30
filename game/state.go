package game

import "math"

// State holds both actors, their movement targets and the lake.
// The player moves freely inside the lake; the goblin is confined to the
// border and is tracked only by its angle.
type State struct {
	tuning Tuning
	lake   Lake

	player          Point2D
	playerTarget    Point2D
	hasPlayerTarget bool

	goblin          PolarAngle
	goblinTarget    PolarAngle
	hasGoblinTarget bool

	tally Tally
}

// Snapshot is a read-only copy of the state handed to renderers
type Snapshot struct {
	Lake Lake

	Player          Point2D
	PlayerTarget    Point2D
	HasPlayerTarget bool

	Goblin          PolarAngle
	GoblinTarget    PolarAngle
	HasGoblinTarget bool

	// GoblinSnap is the catch tolerance in radians for the current lake
	GoblinSnap float64

	Status Status
	Tally  Tally
}

// NewState creates a state with the player at the lake center and the
// goblin at angle 0
func NewState(tuning Tuning, lake Lake) *State {
	s := &State{
		tuning: tuning,
		lake:   lake,
	}
	s.Reset()
	return s
}

// Lake returns the current playing field
func (s *State) Lake() Lake { return s.lake }

// Player returns the player position
func (s *State) Player() Point2D { return s.player }

// PlayerTarget returns the point the player is heading for, if any
func (s *State) PlayerTarget() (Point2D, bool) { return s.playerTarget, s.hasPlayerTarget }

// Goblin returns the goblin's angle on the border
func (s *State) Goblin() PolarAngle { return s.goblin }

// GoblinTarget returns the angle the goblin is running toward, if any
func (s *State) GoblinTarget() (PolarAngle, bool) { return s.goblinTarget, s.hasGoblinTarget }

// Tally returns the finished rounds so far
func (s *State) Tally() Tally { return s.tally }

// Tuning returns the gameplay constants in use
func (s *State) Tuning() Tuning { return s.tuning }

// Status returns the round phase outside of a resolving frame
func (s *State) Status() Status {
	if s.hasPlayerTarget {
		return Status{Phase: PhasePursuing}
	}
	return Status{Phase: PhaseIdle}
}

// SetPlayerTarget points the player at requested. Targets outside the lake
// are clamped onto the border.
func (s *State) SetPlayerTarget(requested Point2D) {
	if s.lake.Contains(requested) {
		s.playerTarget = requested
	} else {
		s.playerTarget = s.lake.BorderProjection(requested)
	}
	s.hasPlayerTarget = true
}

// AdvancePlayer moves the player toward its target at constant speed.
// dt is in milliseconds.
func (s *State) AdvancePlayer(dt float64) {
	if !s.hasPlayerTarget {
		return
	}
	target := s.playerTarget

	// Snap once close on both axes so the approach terminates
	snap := s.tuning.PlayerSnap
	if math.Abs(target.X-s.player.X) < snap && math.Abs(target.Y-s.player.Y) < snap {
		s.player = target
		return
	}

	step := s.tuning.PlayerSpeed * dt
	if step <= 0 {
		return
	}
	if step >= Distance(s.player, target) {
		s.player = target
		return
	}
	s.player = ProjectToward(s.player, target, step)
}

// AdvanceGoblin runs the goblin along the border toward its target angle,
// taking the shorter way around. The step is capped at the remaining arc so
// the goblin never runs past its target. dt is in milliseconds.
func (s *State) AdvanceGoblin(dt float64) {
	if !s.hasGoblinTarget {
		return
	}
	target := s.goblinTarget

	if AngularDistance(s.goblin, target) < s.lake.ArcAngle(s.tuning.GoblinSnapArc) {
		s.goblin = target
		return
	}

	ccw := ArcCCW(s.goblin, target)
	cw := ArcCW(s.goblin, target)

	// Constant speed along the border, so angular speed falls with radius
	step := s.lake.ArcAngle(s.tuning.GoblinSpeed * dt)
	if step <= 0 {
		return
	}

	switch {
	case ccw < cw:
		s.goblin = NewPolarAngle(s.goblin.Theta + math.Min(step, ccw))
	case cw < ccw:
		s.goblin = NewPolarAngle(s.goblin.Theta - math.Min(step, cw))
	default:
		// Directly opposite: both ways are equally long, stay put
	}
}

// EvaluateRound retargets the goblin at the player's direction and ends the
// round when the player has reached the border. A resolved round is reset
// before this returns.
func (s *State) EvaluateRound() Status {
	angle := s.lake.ToPolar(s.player)

	// Pure reactive pursuit: aim at where the player is, not where it heads
	s.goblinTarget = angle
	s.hasGoblinTarget = true

	if s.lake.DistanceToBorder(s.player) >= s.tuning.BorderReach {
		return s.Status()
	}

	outcome := OutcomeWin
	if AngularDistance(s.goblin, angle) < s.lake.ArcAngle(s.tuning.GoblinSnapArc) {
		outcome = OutcomeLoss
	}
	s.tally.record(outcome)
	s.Reset()
	return Resolved(outcome)
}

// Tick advances one frame: player, goblin, then the round check.
// dt is in milliseconds.
func (s *State) Tick(dt float64) Snapshot {
	s.AdvancePlayer(dt)
	s.AdvanceGoblin(dt)
	status := s.EvaluateRound()
	snap := s.Snapshot()
	snap.Status = status
	return snap
}

// Reset puts the player back at the center and the goblin at angle 0,
// dropping both targets
func (s *State) Reset() {
	s.player = s.lake.Center
	s.goblin = PolarAngle{}
	s.playerTarget = Point2D{}
	s.hasPlayerTarget = false
	s.goblinTarget = PolarAngle{}
	s.hasGoblinTarget = false
}

// Recenter fits the lake to a surface of the given size. It returns false
// and leaves the state untouched when the surface is too small for a lake.
func (s *State) Recenter(width, height float64) bool {
	next, ok := s.tuning.LakeFor(width, height)
	if !ok {
		return false
	}
	prev := s.lake
	s.lake = next

	if !s.tuning.PreserveOnResize {
		s.player = next.Center
		s.playerTarget = Point2D{}
		s.hasPlayerTarget = false
		return true
	}

	s.player = rescale(prev, next, s.player)
	if s.hasPlayerTarget {
		s.playerTarget = rescale(prev, next, s.playerTarget)
	}
	return true
}

// rescale keeps pt at the same relative position when the lake changes
func rescale(from, to Lake, pt Point2D) Point2D {
	if !(from.Radius > 0) {
		return to.Center
	}
	offset := pt.Sub(from.Center).Scale(to.Radius / from.Radius)
	return to.Center.Add(offset)
}

// Snapshot copies the current state
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Lake:            s.lake,
		Player:          s.player,
		PlayerTarget:    s.playerTarget,
		HasPlayerTarget: s.hasPlayerTarget,
		Goblin:          s.goblin,
		GoblinTarget:    s.goblinTarget,
		HasGoblinTarget: s.hasGoblinTarget,
		GoblinSnap:      s.lake.ArcAngle(s.tuning.GoblinSnapArc),
		Status:          s.Status(),
		Tally:           s.tally,
	}
}
