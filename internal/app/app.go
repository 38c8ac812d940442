package app

import (
	"snake/internal/config"
	"snake/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// App is one play session: the game, its logger and the quit flag shared
// with the signal watcher. Everything except Stop and Stopped must be
// called from the frontend loop.
type App struct {
	game   *domain.Game
	config *config.Config
	logger *zap.Logger

	session string
	round   int
	ticks   int

	stopped atomic.Bool
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	return NewWithRand(cfg, logger, domain.NewRand(cfg.Seed))
}

func NewWithRand(cfg *config.Config, logger *zap.Logger, rng domain.Rand) *App {
	session := uuid.New().String()
	a := &App{
		game:    domain.NewGame(&cfg.Game, rng),
		config:  cfg,
		session: session,
		round:   1,
		logger:  logger.With(zap.String("session", session)),
	}

	a.logger.Info("game started",
		zap.Int("width", cfg.Game.Width),
		zap.Int("height", cfg.Game.Height),
		zap.Int("updates_per_second", cfg.Game.UpdatesPerSecond),
		zap.Uint64("seed", cfg.Seed),
		zap.Stringer("food", a.game.Food.Pos),
	)

	return a
}

func (a *App) Game() *domain.Game {
	return a.game
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Session() string {
	return a.session
}

func (a *App) Round() int {
	return a.round
}

// Tick advances the game one step and logs what happened.
func (a *App) Tick() *domain.TickResult {
	result := a.game.Tick()
	if !result.Moved {
		return result
	}
	a.ticks++

	if result.Ate {
		a.logger.Debug("food eaten",
			zap.Int("round", a.round),
			zap.Int("length", a.game.Snake.Len()),
			zap.Stringer("food", result.Food),
			zap.Bool("placed", result.FoodPlaced),
		)
		if !result.FoodPlaced {
			a.logger.Info("no free cell left for food", zap.Int("round", a.round))
		}
	}

	if result.Died {
		a.logger.Info("snake died",
			zap.Int("round", a.round),
			zap.Stringer("cause", result.Cause),
			zap.Stringer("head", result.Head),
			zap.Int("length", a.game.Snake.Len()),
			zap.Int("ticks", a.ticks),
		)
	}

	return result
}

// Handle applies one input command.
func (a *App) Handle(cmd domain.Command) bool {
	if cmd == domain.CommandNone {
		return false
	}

	changed := a.game.Handle(cmd)
	if !changed {
		return false
	}

	switch cmd {
	case domain.CommandRevive:
		a.round++
		a.ticks = 0
		a.logger.Info("snake revived",
			zap.Int("round", a.round),
			zap.Stringer("food", a.game.Food.Pos),
		)
	case domain.CommandPause:
		a.logger.Info("game paused", zap.Int("round", a.round))
	case domain.CommandResume:
		a.logger.Info("game resumed", zap.Int("round", a.round))
	default:
		a.logger.Debug("direction buffered",
			zap.Stringer("direction", a.game.Snake.Pending),
			zap.Stringer("phase", a.game.Phase()),
		)
	}

	return true
}

// Stop asks the frontend loop to exit. Safe to call from any goroutine.
func (a *App) Stop() {
	if a.stopped.CompareAndSwap(false, true) {
		a.logger.Info("game stopped", zap.Int("round", a.round))
	}
}

func (a *App) Stopped() bool {
	return a.stopped.Load()
}
