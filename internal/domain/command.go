package domain

// Command is a player input, independent of the frontend that read it.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandRevive
	CommandPause
	CommandResume
)

func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return DirectionUp, true
	case CommandDown:
		return DirectionDown, true
	case CommandLeft:
		return DirectionLeft, true
	case CommandRight:
		return DirectionRight, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandRevive:
		return "revive"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	}
	return "none"
}
