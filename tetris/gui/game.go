// Package gui runs the engine in an ebiten window, optionally with a Dear
// ImGui debug overlay.
package gui

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	"github.com/rs/zerolog"
)

// Config controls the window and the debug overlay.
type Config struct {
	CellSize int
	Debug    bool
	Keys     *KeyMap
}

// Game implements ebiten.Game around an engine driven by the wall clock.
type Game struct {
	engine   *tetris.Engine[time.Time]
	input    *KeyQueue
	renderer *Renderer
	log      zerolog.Logger

	imgui   *ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
	timer   *debugui.FrameTimer

	keys []ebiten.Key
}

// NewGame creates a game. The engine is built here so that it polls the
// game's key queue and renders into the game's renderer.
func NewGame(cfg Config, selector tetris.PieceSelector, logger zerolog.Logger) *Game {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 32
	}
	g := &Game{
		input:    NewKeyQueue(cfg.Keys),
		renderer: NewRenderer(cfg.CellSize),
		log:      logger,
	}
	g.engine = tetris.NewEngine[time.Time](tetris.SystemClock{}, g.input, selector, g.renderer,
		tetris.WithLogger(logger))

	if cfg.Debug {
		g.imgui = ebitenbackend.NewEbitenBackend()
		g.timer = debugui.NewFrameTimer()
		stats := debugui.NewPerformanceStats(120)
		inspector := &debugui.BoardInspector{}
		g.overlay = debugui.NewOverlay(
			func() { stats.Render(g.engine.Stats(), g.timer.GetDeltaTime()) },
			func() { inspector.Render(g.engine.Snapshot(), g.engine.Outcome(), g.engine.Totals()) },
		)
	}
	return g
}

// Engine returns the underlying engine.
func (g *Game) Engine() *tetris.Engine[time.Time] {
	return g.engine
}

// Run opens the window and blocks until the player exits or the window is
// closed.
func (g *Game) Run(title string) error {
	w, h := g.renderer.ScreenSize()
	if g.imgui != nil {
		g.imgui.CreateWindow(title, w+480, h)
		imgui.CurrentIO().SetIniFilename("")
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(title)
	}
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
		defer g.imgui.EndFrame()
		g.overlay.Render()
		if g.overlay.Input.WantCaptureKeyboard {
			return g.step(nil)
		}
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	return g.step(g.keys)
}

// step feeds pressed keys to the engine and runs one frame. A lost game
// restarts; exiting terminates the ebiten loop.
func (g *Game) step(keys []ebiten.Key) error {
	g.input.Collect(keys)

	switch g.engine.Frame() {
	case tetris.Lost:
		totals := g.engine.Totals()
		g.log.Info().Int("game", totals.Games).Int64("pieces", totals.Pieces).Int64("lines", totals.Lines).Msg("restarting")
		g.input.Clear()
		g.engine.Reset()
	case tetris.Quit:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.renderer.ScreenSize()
}
