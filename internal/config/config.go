package config

import (
	"io"
	"os"

	"snake/internal/domain"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCellSize = errors.New("invalid cell size")
	ErrEmptyTitle      = errors.New("window title is empty")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const (
	minCellSize = 4
	maxCellSize = 64
)

type WindowConfig struct {
	CellSize int    `yaml:"cell_size"`
	Title    string `yaml:"title"`
	Hints    bool   `yaml:"hints"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

type Config struct {
	Game   domain.GameConfig `yaml:"game"`
	Window WindowConfig      `yaml:"window"`
	Log    LogConfig         `yaml:"log"`
	Seed   uint64            `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		Game: *domain.DefaultGameConfig(),
		Window: WindowConfig{
			CellSize: 20,
			Title:    "snake game",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer func() {
		_ = file.Close()
	}()
	return Decode(file)
}

func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WithMessage(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return errors.WithMessage(err, "game")
	}
	if c.Window.CellSize < minCellSize || c.Window.CellSize > maxCellSize {
		return errors.Wrapf(ErrInvalidCellSize, "%d not in [%d, %d]", c.Window.CellSize, minCellSize, maxCellSize)
	}
	if c.Window.Title == "" {
		return ErrEmptyTitle
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidLogLevel, "%q", c.Log.Level)
	}
	return nil
}

// WindowSize is the canvas size in pixels: one cell per grid square.
func (c *Config) WindowSize() (int, int) {
	return c.Game.Width * c.Window.CellSize, c.Game.Height * c.Window.CellSize
}
