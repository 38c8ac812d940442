package terminal

import (
	"snake/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// IsQuitKey reports whether ev closes the game: Escape or Ctrl-C.
func IsQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func KeyCommand(ev *tcell.EventKey) domain.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.CommandUp
	case tcell.KeyDown:
		return domain.CommandDown
	case tcell.KeyLeft:
		return domain.CommandLeft
	case tcell.KeyRight:
		return domain.CommandRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return domain.CommandRevive
		case 'p', 'P':
			return domain.CommandPause
		case 'r', 'R':
			return domain.CommandResume
		}
	}
	return domain.CommandNone
}
