package domain

type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "none"
}

type TickResult struct {
	Moved      bool
	Ate        bool
	FoodPlaced bool
	Died       bool
	Cause      DeathCause
	Head       Coord
	Food       Coord
}

// Tick advances the game by one step. A dead snake or a paused game does
// not change.
func (g *Game) Tick() *TickResult {
	if !g.Snake.Alive || g.Paused {
		return &TickResult{
			Head: g.Snake.Head(),
			Food: g.Food.Pos,
		}
	}
	return g.Snake.Update(g.Field, g.Food, g.rng)
}
