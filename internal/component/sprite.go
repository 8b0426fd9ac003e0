package component

import (
	"boundless/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CSprite ecs.ComponentType = 4

// Sprite is the drawable for an entity. Lower Order draws first.
type Sprite struct {
	Glyph string
	FG    tcell.Color
	Order int
}

func (Sprite) Type() ecs.ComponentType { return CSprite }
