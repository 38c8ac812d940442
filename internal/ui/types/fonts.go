package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HintFont is the face used for the optional status overlay.
var HintFont font.Face = basicfont.Face7x13
