package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidGrid = errors.New("invalid grid size")
	ErrInvalidRate = errors.New("invalid updates per second")
)
