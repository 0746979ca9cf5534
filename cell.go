package termgrid

import "github.com/gdamore/tcell/v2"

// Cell stores one character with its foreground and background colors. It
// corresponds to a single terminal grid position.
//
// Colors are opaque to the engine: they are stored and compared, never
// interpreted. Cell is a comparable value type and can be copied freely.
type Cell struct {
	Ch rune
	Fg tcell.Color
	Bg tcell.Color
}

// NewCell creates a cell with default colors.
func NewCell(ch rune) Cell {
	return Cell{Ch: ch, Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
}

// NewCellFg creates a cell with the given foreground color.
func NewCellFg(ch rune, fg tcell.Color) Cell {
	return Cell{Ch: ch, Fg: fg, Bg: tcell.ColorDefault}
}

// NewCellBg creates a cell with the given background color.
func NewCellBg(ch rune, bg tcell.Color) Cell {
	return Cell{Ch: ch, Fg: tcell.ColorDefault, Bg: bg}
}

// DefaultCell returns a blank cell: a space with default colors.
func DefaultCell() Cell {
	return NewCell(' ')
}

// Size returns (1, 1); a cell always occupies exactly one grid position.
func (c Cell) Size() (width, height uint16) {
	return 1, 1
}
