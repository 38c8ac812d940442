package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameScreen struct {
	game *domain.Game

	fieldRenderer *components.FieldRenderer
	keyboard      *input.KeyboardHandler

	hints    bool
	hintFace *text.GoXFace
}

func NewGameScreen(game *domain.Game, cellSize int, hints bool) *GameScreen {
	return &GameScreen{
		game:          game,
		fieldRenderer: components.NewFieldRenderer(cellSize),
		keyboard:      input.NewKeyboardHandler(),
		hints:         hints,
		hintFace:      text.NewGoXFace(types.HintFont),
	}
}

func (s *GameScreen) Update() []domain.Command {
	return s.keyboard.Update()
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.fieldRenderer.DrawScene(imageCanvas{image: screen}, s.game)

	if s.hints {
		s.drawHint(screen)
	}
}

func (s *GameScreen) drawHint(screen *ebiten.Image) {
	hint := components.HintText(s.game)
	if hint == "" {
		return
	}

	metrics := s.hintFace.Metrics()
	w, h := text.Measure(hint, s.hintFace, metrics.HAscent+metrics.HDescent)

	bounds := screen.Bounds()
	x := (float64(bounds.Dx()) - w) / 2
	y := (float64(bounds.Dy()) - h) / 2

	vector.DrawFilledRect(screen,
		float32(x-6), float32(y-4),
		float32(w+12), float32(h+8),
		types.Darken(types.ColorBackground, 0.5), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(types.ColorTextHighlight)
	text.Draw(screen, hint, s.hintFace, op)
}
