// Package desktop runs a match in an Ebiten window, optionally with the
// debugui inspector drawn on top.
package desktop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/pong/ecs/debugui"
	debugebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/pong"
)

const glyphFaceHeight = 13

// Options configures Run.
type Options struct {
	Debug  bool
	Logger *log.Logger
}

// Game adapts a pong.Match to ebiten.Game.
type Game struct {
	match    *pong.Match
	keyboard *Keyboard
	overlay  *debugebiten.Overlay
	showUI   bool
	viewport Viewport
	face     text.Face
	logger   *log.Logger
	finished bool
}

// NewGame wires the keyboard into match. overlay may be nil.
func NewGame(match *pong.Match, overlay *debugebiten.Overlay, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	cfg := match.Config()
	g := &Game{
		match:    match,
		keyboard: &Keyboard{},
		overlay:  overlay,
		showUI:   overlay != nil,
		viewport: Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height},
		face:     text.NewGoXFace(basicfont.Face7x13),
		logger:   logger,
	}
	match.SetKeys(g.keyboard)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showUI = !g.showUI
	}

	if g.showUI {
		g.overlay.Update(1.0 / float32(ebiten.TPS()))
		g.keyboard.Muted = g.overlay.WantsKeyboard()
	} else {
		g.keyboard.Muted = false
	}

	if g.finished {
		return nil
	}
	g.match.Process()
	if side, ok := g.match.Winner(); ok {
		left, right := g.match.Scores()
		g.logger.Info("match over", "winner", side, "left", left, "right", right)
		g.finished = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, call := range g.match.DrawCalls() {
		g.drawCall(screen, call)
	}
	if g.finished {
		side, _ := g.match.Winner()
		g.drawBanner(screen, strings.ToUpper(side.String())+" WINS")
	}
	if g.showUI {
		g.overlay.DrawOver(screen)
	}
}

func (g *Game) drawCall(screen *ebiten.Image, call pong.DrawCall) {
	x, y, w, h := g.viewport.Rect(call)
	if call.Color[3] > 0 {
		vector.DrawFilledRect(screen, x, y, w, h, FillColor(call.Color), true)
	}
	if call.Glyph == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(w)/pong.GlyphWidth, float64(h)/glyphFaceHeight)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(GlyphColor(call.Color))
	text.Draw(screen, string(call.Glyph.Rune()), g.face, op)
}

func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(float64(g.viewport.Width)/2-float64(len(msg))*pong.GlyphWidth*2, float64(g.viewport.Height)/2)
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.viewport.Width, g.viewport.Height
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(match *pong.Match, opts Options) error {
	cfg := match.Config()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var overlay *debugebiten.Overlay
	if opts.Debug {
		inspector := debugui.NewInspector(match.World(), 240)
		overlay = debugebiten.NewOverlay(inspector, cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "debug", opts.Debug)
	if err := ebiten.RunGame(NewGame(match, overlay, logger)); err != nil {
		return fmt.Errorf("run desktop game: %w", err)
	}
	return nil
}
