package termgrid

// PaintCommand is one paint operation: a contiguous horizontal run of
// non-empty cells starting at an absolute position. Commands are maximal
// within their row, so a frame reduces to the fewest operations an
// external renderer needs to redraw it.
type PaintCommand struct {
	x     uint16
	y     uint16
	cells []Cell
}

// NewPaintCommand creates a paint command at the given absolute position.
func NewPaintCommand(x, y uint16, cells []Cell) PaintCommand {
	return PaintCommand{x: x, y: y, cells: append([]Cell(nil), cells...)}
}

// Pos returns the absolute start position of the run.
func (p PaintCommand) Pos() (x, y uint16) {
	return p.x, p.y
}

// Cells returns the cells of the run in paint order.
func (p PaintCommand) Cells() []Cell {
	return p.cells
}

// Text returns the run's characters as a string, without styling.
func (p PaintCommand) Text() string {
	runes := make([]rune, len(p.cells))
	for i, c := range p.cells {
		runes[i] = c.Ch
	}
	return string(runes)
}

// Equal returns true if both commands start at the same position and hold
// identical cells.
func (p PaintCommand) Equal(other PaintCommand) bool {
	if p.x != other.x || p.y != other.y || len(p.cells) != len(other.cells) {
		return false
	}
	for i, c := range p.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// PaintCommands run-length-encodes a frame into paint commands. The frame
// buffer is scanned row by row; a command is emitted whenever a run of
// non-empty cells ends, either at an empty cell or a row boundary. Empty
// cells are never part of any command. Positions are offset by the frame
// box's base.
func PaintCommands(frame Box[Frame]) []PaintCommand {
	baseX, baseY := frame.Pos()
	inner := frame.Inner()
	width := int(inner.width)

	if width == 0 {
		return nil
	}

	var cmds []PaintCommand
	var run []Cell
	var startX, startY uint16

	flush := func() {
		if len(run) > 0 {
			cmds = append(cmds, PaintCommand{x: startX, y: startY, cells: run})
			run = nil
		}
	}

	for i, cell := range inner.cells {
		if i%width == 0 {
			flush()
		}

		if cell == nil {
			flush()
			continue
		}

		if len(run) == 0 {
			startX = baseX + uint16(i%width)
			startY = baseY + uint16(i/width)
		}
		run = append(run, *cell)
	}
	flush()

	return cmds
}
