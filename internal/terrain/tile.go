package terrain

import "github.com/gdamore/tcell/v2"

// Kind identifies what fills a terrain cell.
type Kind uint8

const (
	Air Kind = iota
	Dirt
	GrassyDirt
	Stone
)

// Solid reports whether the cell is drawn and can be dug.
func (k Kind) Solid() bool { return k != Air }

// Glyph returns the character drawn for the kind.
func (k Kind) Glyph() string {
	switch k {
	case Dirt:
		return "▒"
	case GrassyDirt:
		return "▀"
	case Stone:
		return "█"
	}
	return " "
}

// Color returns the foreground color for the kind.
func (k Kind) Color() tcell.Color {
	switch k {
	case Dirt:
		return tcell.ColorSaddleBrown
	case GrassyDirt:
		return tcell.ColorGreen
	case Stone:
		return tcell.ColorGray
	}
	return tcell.ColorDefault
}

func (k Kind) String() string {
	switch k {
	case Air:
		return "air"
	case Dirt:
		return "dirt"
	case GrassyDirt:
		return "grassy dirt"
	case Stone:
		return "stone"
	}
	return "unknown"
}
