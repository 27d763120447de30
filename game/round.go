package game

// Phase is where the current round stands
type Phase uint8

const (
	// PhaseIdle is the state right after a reset: the player has no target yet
	PhaseIdle Phase = iota
	// PhasePursuing means the player has been given a target and both actors move
	PhasePursuing
	// PhaseResolved is reported for the single frame in which the player
	// reached the border. The state has already been reset by then.
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePursuing:
		return "pursuing"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished round
type Outcome uint8

const (
	OutcomeWin Outcome = iota + 1 // Player reached the border away from the goblin
	OutcomeLoss                   // Goblin was waiting where the player landed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Status is the round state of a single frame. Outcome is only set when
// Phase is PhaseResolved.
type Status struct {
	Phase   Phase
	Outcome Outcome
}

// Resolved builds the status of a finished round
func Resolved(o Outcome) Status {
	return Status{Phase: PhaseResolved, Outcome: o}
}

// IsResolved reports whether the round ended in this frame
func (s Status) IsResolved() bool {
	return s.Phase == PhaseResolved
}

func (s Status) String() string {
	if s.IsResolved() {
		return s.Phase.String() + "(" + s.Outcome.String() + ")"
	}
	return s.Phase.String()
}

// Tally counts finished rounds. It lives only as long as the process.
type Tally struct {
	Wins   int
	Losses int
}

// Rounds returns the number of finished rounds
func (t Tally) Rounds() int {
	return t.Wins + t.Losses
}

func (t *Tally) record(o Outcome) {
	switch o {
	case OutcomeWin:
		t.Wins++
	case OutcomeLoss:
		t.Losses++
	}
}
