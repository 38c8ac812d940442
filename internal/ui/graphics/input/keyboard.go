package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the commands for keys pressed since the last frame, in
// the order ebiten reports them.
func (kh *KeyboardHandler) Update() []domain.Command {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])
	if len(kh.keys) == 0 {
		return nil
	}

	commands := make([]domain.Command, 0, len(kh.keys))
	for _, key := range kh.keys {
		if cmd := KeyCommand(key); cmd != domain.CommandNone {
			commands = append(commands, cmd)
		}
	}
	return commands
}

func KeyCommand(key ebiten.Key) domain.Command {
	switch key {
	case ebiten.KeyUp:
		return domain.CommandUp
	case ebiten.KeyDown:
		return domain.CommandDown
	case ebiten.KeyLeft:
		return domain.CommandLeft
	case ebiten.KeyRight:
		return domain.CommandRight
	case ebiten.KeySpace:
		return domain.CommandRevive
	case ebiten.KeyP:
		return domain.CommandPause
	case ebiten.KeyR:
		return domain.CommandResume
	}
	return domain.CommandNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
