package app

// Pacer turns a frontend frame rate into game ticks, so input can be
// polled each frame while the game moves at its own fixed rate. Each frame
// adds the tick rate to an accumulator and a tick is due once it reaches
// the frame rate; rates that do not divide the frame rate still average
// out to exactly ticksPerSecond ticks per second.
type Pacer struct {
	fps int
	tps int
	acc int
}

func NewPacer(framesPerSecond, ticksPerSecond int) *Pacer {
	if ticksPerSecond > framesPerSecond {
		ticksPerSecond = framesPerSecond
	}
	return &Pacer{fps: framesPerSecond, tps: ticksPerSecond}
}

// Frame records one frame and reports whether a tick is due.
func (p *Pacer) Frame() bool {
	if p.tps <= 0 {
		return false
	}
	p.acc += p.tps
	if p.acc < p.fps {
		return false
	}
	p.acc -= p.fps
	return true
}
