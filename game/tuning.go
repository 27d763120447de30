package game

import (
	"math"
	"time"
)

// Tuning holds the gameplay constants. Speeds and distances are in surface
// units (pixels); dt is measured in milliseconds.
type Tuning struct {
	// PlayerSpeed is how far the player swims per millisecond
	PlayerSpeed float64 `toml:"player_speed"`

	// GoblinSpeed is how far the goblin runs along the border per millisecond
	GoblinSpeed float64 `toml:"goblin_speed"`

	// PlayerSnap is the per-axis distance at which the player snaps onto its target
	PlayerSnap float64 `toml:"player_snap"`

	// GoblinSnapArc is the border arc length at which the goblin snaps onto
	// its target angle. The same arc decides whether the goblin caught the player.
	GoblinSnapArc float64 `toml:"goblin_snap_arc"`

	// BorderReach is how close to the border the player must get to end the round
	BorderReach float64 `toml:"border_reach"`

	// Margin is the gap kept between the lake and the edge of the surface
	Margin float64 `toml:"margin"`

	// MaxFrameDelta caps the elapsed time fed into a single frame
	MaxFrameDelta time.Duration `toml:"max_frame_delta"`

	// PreserveOnResize keeps the player's position relative to the lake when
	// the surface is resized. When false the player is moved to the new center.
	PreserveOnResize bool `toml:"preserve_on_resize"`
}

// DefaultTuning returns the standard gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:      0.1,
		GoblinSpeed:      0.4, // Four times the player
		PlayerSnap:       1.0,
		GoblinSnapArc:    4.0,
		BorderReach:      1.0,
		Margin:           10.0,
		MaxFrameDelta:    100 * time.Millisecond,
		PreserveOnResize: true,
	}
}

// MinRadius is the radius a lake must exceed to be playable. Below it the
// player starts within BorderReach of the border, or the catch arc spans
// the whole rim, and every round is lost on its first frame.
func (t Tuning) MinRadius() float64 {
	return math.Max(t.BorderReach, t.GoblinSnapArc/math.Pi)
}

// LakeFor returns the lake that fits a surface of the given size, or false
// when the surface is too small to hold a playable one.
func (t Tuning) LakeFor(width, height float64) (Lake, bool) {
	radius := math.Min(width, height)/2 - t.Margin
	if !(radius > 0) || radius <= t.MinRadius() {
		return Lake{}, false
	}
	return NewLake(Point2D{X: width / 2, Y: height / 2}, radius), true
}
