package terminal

import (
	"context"
	"time"

	"snake/internal/app"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

// Runner drives a game on a tcell screen. Key events and ticks are
// handled one at a time from the same select loop.
type Runner struct {
	app      *app.App
	screen   tcell.Screen
	canvas   *Canvas
	renderer *components.FieldRenderer
	hints    bool
}

// NewRunner wraps an initialised screen. The caller owns the screen and
// must call Fini after Run returns.
func NewRunner(a *app.App, screen tcell.Screen) *Runner {
	return &Runner{
		app:      a,
		screen:   screen,
		canvas:   NewCanvas(screen),
		renderer: components.NewFieldRenderer(1),
		hints:    a.Config().Window.Hints,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	rate := r.app.Config().Game.UpdatesPerSecond
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			r.app.Stop()
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if r.app.Stopped() {
				return nil
			}
			r.app.Tick()
		}
		r.Draw()
	}
}

// HandleEvent applies one terminal event and reports whether the loop
// should exit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev) {
			r.app.Stop()
			return true
		}
		r.app.Handle(KeyCommand(ev))

	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) Draw() {
	game := r.app.Game()
	r.renderer.DrawScene(r.canvas, game)

	if r.hints {
		if hint := components.HintText(game); hint != "" {
			r.canvas.DrawText(0, game.Field.Height, hint, types.ColorTextHighlight)
		}
	}

	r.screen.Show()
}
