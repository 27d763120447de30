package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"goblinescape/game"
)

// Palette
var (
	colorBackground = color.RGBA{R: 20, G: 28, B: 20, A: 255}
	colorWater      = color.RGBA{R: 30, G: 70, B: 120, A: 255}
	colorRim        = colornames.Lightsteelblue
	colorPlayer     = color.RGBA{R: 0xf7, G: 0x56, B: 0x31, A: 255}
	colorGoblin     = colornames.Limegreen
	colorTarget     = colornames.Gold
	colorCatch      = colornames.Crimson
	colorHUD        = colornames.White
	colorBannerBack = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Actor sizes in pixels
const (
	playerRadius = 5.0
	goblinRadius = 7.0
	rimWidth     = 2.0
	markerSize   = 6.0
	hudMarginX   = 12
	hudMarginY   = 20
)

// Renderer draws snapshots onto an ebiten image
type Renderer struct {
	face font.Face
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Render draws the lake, both actors, the HUD and an optional banner
func (r *Renderer) Render(screen *ebiten.Image, snap game.Snapshot, debug *DebugState, banner string) {
	screen.Fill(colorBackground)

	lake := snap.Lake
	if lake.Radius > 0 {
		cx, cy, radius := float32(lake.Center.X), float32(lake.Center.Y), float32(lake.Radius)
		vector.DrawFilledCircle(screen, cx, cy, radius, colorWater, true)
		vector.StrokeCircle(screen, cx, cy, radius, rimWidth, colorRim, true)

		if debug != nil && debug.ShowTargets {
			r.renderTargets(screen, snap)
		}

		vector.DrawFilledCircle(screen, float32(snap.Player.X), float32(snap.Player.Y), playerRadius, colorPlayer, true)

		goblin := lake.FromPolar(snap.Goblin)
		vector.DrawFilledCircle(screen, float32(goblin.X), float32(goblin.Y), goblinRadius, colorGoblin, true)
	}

	r.renderHUD(screen, snap)

	if debug != nil && debug.ShowStats {
		goblin := lake.FromPolar(snap.Goblin)
		msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nplayer %.1f,%.1f  goblin %.3f rad (%.1f,%.1f)\nstatus %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			snap.Player.X, snap.Player.Y, snap.Goblin.Theta, goblin.X, goblin.Y, snap.Status)
		ebitenutil.DebugPrintAt(screen, msg, hudMarginX, hudMarginY+8)
	}

	if banner != "" {
		r.renderBanner(screen, banner)
	}
}

// renderTargets draws the player's target, the goblin's target and the
// window in which the goblin catches the player
func (r *Renderer) renderTargets(screen *ebiten.Image, snap game.Snapshot) {
	lake := snap.Lake

	if snap.HasPlayerTarget {
		t := snap.PlayerTarget
		x, y := float32(t.X), float32(t.Y)
		vector.StrokeLine(screen, x-markerSize, y-markerSize, x+markerSize, y+markerSize, 1, colorTarget, true)
		vector.StrokeLine(screen, x-markerSize, y+markerSize, x+markerSize, y-markerSize, 1, colorTarget, true)
		vector.StrokeLine(screen, float32(snap.Player.X), float32(snap.Player.Y), x, y, 1, colorTarget, true)
	}

	if snap.HasGoblinTarget {
		r.renderRimTick(screen, lake, snap.GoblinTarget.Theta, colorTarget)
	}

	// Catch window around the goblin
	r.renderRimTick(screen, lake, snap.Goblin.Theta-snap.GoblinSnap, colorCatch)
	r.renderRimTick(screen, lake, snap.Goblin.Theta+snap.GoblinSnap, colorCatch)
}

// renderRimTick draws a short radial line crossing the rim at theta
func (r *Renderer) renderRimTick(screen *ebiten.Image, lake game.Lake, theta float64, clr color.Color) {
	cos, sin := math.Cos(theta), math.Sin(theta)
	inner := lake.Radius - markerSize*2
	outer := lake.Radius + markerSize*2
	x0 := lake.Center.X + cos*inner
	y0 := lake.Center.Y + sin*inner
	x1 := lake.Center.X + cos*outer
	y1 := lake.Center.Y + sin*outer
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, clr, true)
}

// renderHUD draws the round tally
func (r *Renderer) renderHUD(screen *ebiten.Image, snap game.Snapshot) {
	label := fmt.Sprintf("Escapes %d  Caught %d", snap.Tally.Wins, snap.Tally.Losses)
	text.Draw(screen, label, r.face, hudMarginX, hudMarginY, colorHUD)
}

// renderBanner centers msg on a translucent strip
func (r *Renderer) renderBanner(screen *ebiten.Image, msg string) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	textBounds := text.BoundString(r.face, msg)

	stripHeight := float32(textBounds.Dy() * 4)
	vector.DrawFilledRect(screen, 0, float32(h)/2-stripHeight/2, float32(w), stripHeight, colorBannerBack, false)

	x := (w - textBounds.Dx()) / 2
	y := h/2 + textBounds.Dy()/2
	text.Draw(screen, msg, r.face, x, y, colorHUD)
}
