package domain

import (
	"github.com/pkg/errors"
)

const (
	minGridSize = 5
	maxGridSize = 100
	minRate     = 1
	maxRate     = 60
)

type GameConfig struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	UpdatesPerSecond int `yaml:"updates_per_second"`
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:            15,
		Height:           15,
		UpdatesPerSecond: 6,
	}
}

func (c *GameConfig) Validate() error {
	if c.Width < minGridSize || c.Width > maxGridSize {
		return errors.Wrapf(ErrInvalidGrid, "width %d not in [%d, %d]", c.Width, minGridSize, maxGridSize)
	}
	if c.Height < minGridSize || c.Height > maxGridSize {
		return errors.Wrapf(ErrInvalidGrid, "height %d not in [%d, %d]", c.Height, minGridSize, maxGridSize)
	}
	if c.UpdatesPerSecond < minRate || c.UpdatesPerSecond > maxRate {
		return errors.Wrapf(ErrInvalidRate, "%d not in [%d, %d]", c.UpdatesPerSecond, minRate, maxRate)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:            c.Width,
		Height:           c.Height,
		UpdatesPerSecond: c.UpdatesPerSecond,
	}
}
