package app

import (
	"path/filepath"
	"testing"

	"snake/internal/config"
	"snake/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fixedRand always returns the same value, so food lands on (v, v).
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

// seqRand replays values in order and then repeats the last one.
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) Intn(n int) int {
	i := r.next
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.next++
	return r.values[i] % n
}

func newTestApp(t *testing.T, rng domain.Rand) (*App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewWithRand(config.Default(), zap.New(core), rng)
	return a, logs
}

func TestAppStartLogsSession(t *testing.T) {
	a, logs := newTestApp(t, fixedRand(7))

	started := logs.FilterMessage("game started").All()
	require.Len(t, started, 1)
	assert.Equal(t, a.Session(), started[0].ContextMap()["session"])
	assert.Equal(t, int64(15), started[0].ContextMap()["width"])
	assert.Equal(t, 1, a.Round())
}

func TestAppTickLogsDeath(t *testing.T) {
	a, logs := newTestApp(t, fixedRand(7))

	require.True(t, a.Handle(domain.CommandUp))
	result := a.Tick()

	require.True(t, result.Died)
	died := logs.FilterMessage("snake died").All()
	require.Len(t, died, 1)
	assert.Equal(t, "wall", died[0].ContextMap()["cause"])
	assert.Equal(t, "(1,-1)", died[0].ContextMap()["head"])
	assert.Equal(t, int64(1), died[0].ContextMap()["round"])
}

func TestAppTickLogsFood(t *testing.T) {
	// Food starts at (2,2); the replacement skips the occupied (2,2).
	a, logs := newTestApp(t, &seqRand{values: []int{2, 2, 2, 2, 9}})
	a.Handle(domain.CommandDown)
	a.Tick() // (1,1)
	a.Handle(domain.CommandRight)
	a.Tick() // (2,1)
	a.Handle(domain.CommandDown)
	result := a.Tick() // (2,2)

	require.True(t, result.Ate)
	assert.Equal(t, domain.Coord{X: 9, Y: 9}, a.Game().Food.Pos)
	assert.Equal(t, 1, logs.FilterMessage("food eaten").Len())
	assert.Equal(t, 3, a.Game().Snake.Len())
}

func TestAppReviveStartsNewRound(t *testing.T) {
	a, logs := newTestApp(t, fixedRand(7))

	assert.False(t, a.Handle(domain.CommandRevive))
	assert.Equal(t, 0, logs.FilterMessage("snake revived").Len())

	a.Handle(domain.CommandUp)
	a.Tick()
	require.False(t, a.Game().Snake.Alive)

	assert.True(t, a.Handle(domain.CommandRevive))
	assert.Equal(t, 2, a.Round())
	assert.Equal(t, 1, logs.FilterMessage("snake revived").Len())
	assert.True(t, a.Game().Snake.Alive)
}

func TestAppPauseResume(t *testing.T) {
	a, logs := newTestApp(t, fixedRand(7))

	assert.True(t, a.Handle(domain.CommandPause))
	assert.False(t, a.Handle(domain.CommandPause))
	assert.False(t, a.Tick().Moved)
	assert.True(t, a.Handle(domain.CommandResume))
	assert.True(t, a.Tick().Moved)

	assert.Equal(t, 1, logs.FilterMessage("game paused").Len())
	assert.Equal(t, 1, logs.FilterMessage("game resumed").Len())
	assert.False(t, a.Handle(domain.CommandNone))
}

func TestAppStop(t *testing.T) {
	a, logs := newTestApp(t, fixedRand(7))

	assert.False(t, a.Stopped())
	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()
	<-done
	a.Stop()

	assert.True(t, a.Stopped())
	assert.Equal(t, 1, logs.FilterMessage("game stopped").Len())
}

func TestAppSeededRunsRepeat(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99

	first := New(cfg, zap.NewNop())
	second := New(cfg, zap.NewNop())
	assert.Equal(t, first.Game().Food.Pos, second.Game().Food.Pos)
	assert.NotEqual(t, first.Session(), second.Session())
}

func countTicks(p *Pacer, frames int) int {
	ticks := 0
	for i := 0; i < frames; i++ {
		if p.Frame() {
			ticks++
		}
	}
	return ticks
}

func TestPacer(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		tps  int
		want int
	}{
		{"default rate", 60, 6, 6},
		{"divisor", 60, 20, 20},
		{"non divisor", 60, 25, 25},
		{"forty", 60, 40, 40},
		{"just below frame rate", 60, 59, 59},
		{"one", 60, 1, 1},
		{"equal", 60, 60, 60},
		{"above frame rate", 30, 60, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countTicks(NewPacer(tt.fps, tt.tps), tt.fps))
		})
	}
}

func TestPacerSpacing(t *testing.T) {
	p := NewPacer(60, 6)
	for i := 1; i <= 30; i++ {
		assert.Equal(t, i%10 == 0, p.Frame(), "frame %d", i)
	}

	// 25 ticks over 60 frames are spread evenly, never two in a row.
	p = NewPacer(60, 25)
	prev := false
	for i := 0; i < 120; i++ {
		tick := p.Frame()
		assert.False(t, prev && tick, "frame %d", i)
		prev = tick
	}
	assert.Equal(t, 50, countTicks(NewPacer(60, 25), 120))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LogConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))

	path := filepath.Join(t.TempDir(), "snake.log")
	logger, err = NewLogger(config.LogConfig{Level: "debug", File: path}, false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	_ = logger.Sync()

	_, err = NewLogger(config.LogConfig{Level: "loud"}, true)
	assert.Error(t, err)
}
