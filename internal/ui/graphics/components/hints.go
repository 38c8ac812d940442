package components

import "snake/internal/domain"

// HintText is the one-line status shown when hints are enabled. A running
// game has no hint.
func HintText(game *domain.Game) string {
	switch game.Phase() {
	case domain.PhasePaused:
		return "PAUSED - R to resume"
	case domain.PhaseDeadRunning:
		return "SPACE to revive"
	case domain.PhaseDeadPaused:
		return "SPACE to revive, R to resume"
	}
	return ""
}
