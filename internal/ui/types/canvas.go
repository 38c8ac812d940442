package types

import "image/color"

// Canvas is the drawing surface a frontend hands to the scene renderer.
// Coordinates and sizes are in the frontend's own units.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
}
