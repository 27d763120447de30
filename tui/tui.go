// Package tui is the terminal front end. It maps terminal cells onto lake
// coordinates, feeds mouse drags into a game session and draws every frame
// with tcell.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"goblinescape/config"
	"goblinescape/game"
	"goblinescape/input"
)

// cellAspect is how many lake units one terminal row spans. Cells are about
// twice as tall as they are wide, so doubling rows keeps the lake round.
const cellAspect = 2.0

// Cell glyphs
const (
	glyphWater  = '~'
	glyphRim    = '·'
	glyphPlayer = '@'
	glyphGoblin = 'G'
)

var (
	styleLand   = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen)
	styleWater  = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorNavy)
	styleRim    = tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue).Background(tcell.ColorNavy)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Background(tcell.ColorNavy).Bold(true)
	styleGoblin = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

// App runs the game on a tcell screen
type App struct {
	screen  tcell.Screen
	config  config.Config
	clock   game.Clock
	session *game.Session
	tracker *input.Tracker

	banner      string
	bannerUntil time.Time
}

// New creates the terminal game on an initialized screen. The lake is sized
// from the screen; cfg.Terminal.Margin replaces the window margin.
func New(screen tcell.Screen, cfg config.Config, clock game.Clock) (*App, error) {
	if clock == nil {
		clock = game.SystemClock{}
	}
	tuning := cfg.Tuning
	tuning.Margin = cfg.Terminal.Margin

	w, h := surfaceSize(screen)
	lake, ok := tuning.LakeFor(w, h)
	if !ok {
		cols, rows := screen.Size()
		return nil, fmt.Errorf("terminal %dx%d is too small for the lake", cols, rows)
	}

	a := &App{
		screen: screen,
		config: cfg,
		clock:  clock,
	}
	a.session = game.NewSession(game.NewState(tuning, lake), clock, a)
	a.tracker = input.NewTracker(a.session)
	return a, nil
}

// Session exposes the game session driven by the app
func (a *App) Session() *game.Session { return a.session }

// surfaceSize returns the lake surface in lake units. The bottom row is
// reserved for the status line.
func surfaceSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols), float64(rows-1) * cellAspect
}

// toLake converts a cell to the lake coordinate of its center
func toLake(col, row int) game.Point2D {
	return game.Point2D{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * cellAspect}
}

// toCell converts a lake coordinate to the cell containing it
func toCell(p game.Point2D) (int, int) {
	return int(p.X), int(p.Y / cellAspect)
}

// RoundResolved pauses play and shows the result on the status line
func (a *App) RoundResolved(outcome game.Outcome, snap game.Snapshot) {
	if outcome == game.OutcomeLoss {
		a.banner = " The goblin got you! "
	} else {
		a.banner = " You escaped! "
	}
	a.bannerUntil = a.clock.Now().Add(a.config.Banner)
	log.Printf("round %d: %s", snap.Tally.Rounds(), outcome)
}

// Run drives the frame loop until the player quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.config.Terminal.FrameInterval)
	defer ticker.Stop()

	a.Step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		if a.banner != "" {
			return true
		}
		col, row := ev.Position()
		p := toLake(col, row)
		if ev.Buttons()&tcell.Button1 != 0 {
			if a.tracker.Dragging() {
				a.tracker.Move(p)
			} else {
				a.tracker.Down(p)
			}
		} else {
			a.tracker.Up()
		}

	case *tcell.EventResize:
		w, h := surfaceSize(a.screen)
		if !a.session.Resize(w, h) {
			log.Printf("terminal too small, keeping previous lake")
		}
		a.screen.Sync()
	}
	return true
}

// Step runs one frame unless a result banner is up, then redraws
func (a *App) Step() {
	if a.banner != "" {
		if a.clock.Now().Before(a.bannerUntil) {
			a.Draw()
			return
		}
		a.banner = ""
		a.tracker.Up()
		a.session.Resync()
	}
	a.session.Frame()
	a.Draw()
}

// Draw paints the last snapshot
func (a *App) Draw() {
	snap := a.session.Last()
	lake := snap.Lake
	cols, rows := a.screen.Size()

	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			d := lake.DistanceToBorder(toLake(col, row))
			switch {
			case d >= cellAspect/2:
				a.screen.SetContent(col, row, glyphWater, nil, styleWater)
			case d > -cellAspect/2:
				a.screen.SetContent(col, row, glyphRim, nil, styleRim)
			default:
				a.screen.SetContent(col, row, ' ', nil, styleLand)
			}
		}
	}

	gc, gr := toCell(lake.FromPolar(snap.Goblin))
	a.setCell(gc, gr, rows-1, cols, glyphGoblin, styleGoblin)

	pc, pr := toCell(snap.Player)
	a.setCell(pc, pr, rows-1, cols, glyphPlayer, stylePlayer)

	a.drawStatus(snap, cols, rows-1)
	a.screen.Show()
}

func (a *App) setCell(col, row, rows, cols int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	a.screen.SetContent(col, row, r, nil, style)
}

func (a *App) drawStatus(snap game.Snapshot, cols, row int) {
	line := fmt.Sprintf(" Escapes %d  Caught %d  drag to swim, q quits", snap.Tally.Wins, snap.Tally.Losses)
	style := styleStatus
	if a.banner != "" {
		line = a.banner
		style = styleBanner
	}

	runes := []rune(line)
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		a.screen.SetContent(col, row, r, nil, style)
	}
}
