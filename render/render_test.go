package render

import (
	"testing"

	"goblinescape/game"
)

func TestBannerText(t *testing.T) {
	tests := []struct {
		outcome game.Outcome
		want    string
	}{
		{game.OutcomeWin, "You escaped!"},
		{game.OutcomeLoss, "The goblin got you!"},
	}
	for _, tt := range tests {
		if got := bannerText(tt.outcome); got != tt.want {
			t.Errorf("bannerText(%v) = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestDebugStateToggle(t *testing.T) {
	tests := []struct {
		name string
		from DebugState
		want DebugState
	}{
		{"off turns everything on", DebugState{}, DebugState{ShowTargets: true, ShowStats: true}},
		{"on turns everything off", DebugState{ShowTargets: true, ShowStats: true}, DebugState{}},
		{"partly on turns off", DebugState{ShowStats: true}, DebugState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.from
			d.Toggle()
			if d != tt.want {
				t.Errorf("Toggle() = %+v, want %+v", d, tt.want)
			}
		})
	}
}
