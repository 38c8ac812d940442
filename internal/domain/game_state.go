package domain

// Game owns the snake, the food and the pause flag. It is not safe for
// concurrent use; frontends drive it from a single loop.
type Game struct {
	Config *GameConfig
	Field  *Field
	Snake  *Snake
	Food   *Food
	Paused bool

	rng Rand
}

func NewGame(config *GameConfig, rng Rand) *Game {
	g := &Game{
		Config: config.Copy(),
		Field:  NewField(config.Width, config.Height),
		Snake:  NewStartSnake(),
		Food:   NewFood(Coord{}),
		rng:    rng,
	}
	g.Food.Place(g.Field, g.Snake, g.rng)
	return g
}

type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseDeadRunning
	PhaseDeadPaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDeadRunning:
		return "dead"
	case PhaseDeadPaused:
		return "dead-paused"
	}
	return "unknown"
}

func (g *Game) Phase() Phase {
	switch {
	case g.Snake.Alive && !g.Paused:
		return PhaseRunning
	case g.Snake.Alive:
		return PhasePaused
	case !g.Paused:
		return PhaseDeadRunning
	}
	return PhaseDeadPaused
}

// Handle applies one input command and reports whether it changed state.
func (g *Game) Handle(cmd Command) bool {
	if dir, ok := cmd.Direction(); ok {
		return g.Steer(dir)
	}

	switch cmd {
	case CommandRevive:
		return g.Revive()
	case CommandPause:
		return g.Pause()
	case CommandResume:
		return g.Resume()
	}
	return false
}

// Steer buffers a direction for the next tick. It is honoured whether the
// snake is alive or not and whether the game is paused or not.
func (g *Game) Steer(dir Direction) bool {
	before := g.Snake.Pending
	return g.Snake.Steer(dir) && before != dir
}

// Revive restarts a dead snake and places new food. Alive snakes are left
// alone.
func (g *Game) Revive() bool {
	if g.Snake.Alive {
		return false
	}
	g.Snake.Revive()
	g.Food.Place(g.Field, g.Snake, g.rng)
	return true
}

// Pause and Resume set the flag; they do not toggle.
func (g *Game) Pause() bool {
	changed := !g.Paused
	g.Paused = true
	return changed
}

func (g *Game) Resume() bool {
	changed := g.Paused
	g.Paused = false
	return changed
}
