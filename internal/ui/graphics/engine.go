package graphics

import (
	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// FramesPerSecond is the ebiten update rate. Keys are polled every frame;
// the game itself moves at the configured updates per second.
const FramesPerSecond = 60

type Screen interface {
	Update() []domain.Command
	Draw(screen *ebiten.Image)
}

type Engine struct {
	width  int
	height int
	title  string

	app    *app.App
	screen Screen
	pacer  *app.Pacer
}

func NewEngine(a *app.App) *Engine {
	cfg := a.Config()
	width, height := cfg.WindowSize()

	return &Engine{
		width:  width,
		height: height,
		title:  cfg.Window.Title,
		app:    a,
		pacer:  app.NewPacer(FramesPerSecond, cfg.Game.UpdatesPerSecond),
	}
}

func (e *Engine) RegisterScreen(screen Screen) {
	e.screen = screen
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(FramesPerSecond)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if e.app.Stopped() {
		return ebiten.Termination
	}
	if input.IsEscapePressed() {
		e.app.Stop()
		return ebiten.Termination
	}

	if e.screen != nil {
		for _, cmd := range e.screen.Update() {
			e.app.Handle(cmd)
		}
	}

	if e.pacer.Frame() {
		e.app.Tick()
	}

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if e.screen == nil {
		return
	}
	e.screen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
