// Package render is the windowed front end: an ebiten game that feeds mouse
// and touch input into a game session and draws its snapshots.
package render

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"goblinescape/config"
	"goblinescape/game"
	"goblinescape/input"
)

// App implements ebiten.Game
type App struct {
	config   config.Config
	session  *game.Session
	tracker  *input.Tracker
	renderer *Renderer
	debug    DebugState

	// Last layout size
	width, height int

	// Round result shown while play is paused
	banner      string
	bannerUntil time.Time

	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	touching    bool

	prevAltEnter bool
}

// NewApp creates the windowed game from cfg
func NewApp(cfg config.Config) (*App, error) {
	lake, ok := cfg.Tuning.LakeFor(float64(cfg.Window.Width), float64(cfg.Window.Height))
	if !ok {
		return nil, fmt.Errorf("window %dx%d is too small for the lake", cfg.Window.Width, cfg.Window.Height)
	}

	a := &App{
		config:   cfg,
		renderer: NewRenderer(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		touchIDs: make([]ebiten.TouchID, 0, 4),
	}
	state := game.NewState(cfg.Tuning, lake)
	a.session = game.NewSession(state, game.SystemClock{}, a)
	a.tracker = input.NewTracker(a.session)
	return a, nil
}

// RoundResolved shows the result and pauses play for the banner duration
func (a *App) RoundResolved(outcome game.Outcome, snap game.Snapshot) {
	a.banner = bannerText(outcome)
	a.bannerUntil = time.Now().Add(a.config.Banner)
	log.Printf("round %d: %s (escapes %d, caught %d)",
		snap.Tally.Rounds(), outcome, snap.Tally.Wins, snap.Tally.Losses)
}

func bannerText(outcome game.Outcome) string {
	if outcome == game.OutcomeLoss {
		return "The goblin got you!"
	}
	return "You escaped!"
}

// Update advances the game by one frame
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.Toggle()
	}
	a.handleFullscreen()

	if a.banner != "" {
		if time.Now().Before(a.bannerUntil) {
			return nil
		}
		// Like a dismissed dialog: the press that started the last drag is gone
		a.banner = ""
		a.tracker.Up()
		a.touching = false
		a.session.Resync()
	}

	a.pollMouse()
	a.pollTouch()
	a.session.Frame()
	return nil
}

// pollMouse feeds the left mouse button into the tracker
func (a *App) pollMouse() {
	mx, my := ebiten.CursorPosition()
	p := game.Point2D{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.tracker.Down(p)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.tracker.Move(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.tracker.Up()
	}
}

// pollTouch follows the first finger down until it lifts
func (a *App) pollTouch() {
	if a.touching {
		if inpututil.IsTouchJustReleased(a.activeTouch) {
			a.touching = false
			a.tracker.Up()
			return
		}
		tx, ty := ebiten.TouchPosition(a.activeTouch)
		a.tracker.Move(game.Point2D{X: float64(tx), Y: float64(ty)})
		return
	}

	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	if len(a.touchIDs) == 0 {
		return
	}
	a.activeTouch = a.touchIDs[0]
	a.touching = true
	tx, ty := ebiten.TouchPosition(a.activeTouch)
	a.tracker.Down(game.Point2D{X: float64(tx), Y: float64(ty)})
}

// handleFullscreen toggles fullscreen on Alt+Enter
func (a *App) handleFullscreen() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	enterPressed := ebiten.IsKeyPressed(ebiten.KeyEnter)
	altEnterPressed := altPressed && enterPressed

	if altEnterPressed && !a.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	a.prevAltEnter = altEnterPressed
}

// Draw renders the latest snapshot
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Render(screen, a.session.Last(), &a.debug, a.banner)
}

// Layout follows the window size so the lake always fills the surface
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		if !a.session.Resize(float64(outsideWidth), float64(outsideHeight)) {
			log.Printf("window %dx%d too small, keeping previous lake", outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
