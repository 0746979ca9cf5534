package termgrid

// Frame is the dense grid produced by flattening a window: the cell
// contents of an actual screen, ready for paint-command extraction. A nil
// entry is a position no view painted.
type Frame struct {
	width  uint16
	height uint16
	cells  []*Cell
}

// NewFrame creates a frame over the given row-major cells. The slice must
// hold exactly width*height entries; the frame takes ownership of it.
func NewFrame(width, height uint16, cells []*Cell) Frame {
	return Frame{width: width, height: height, cells: cells}
}

// Size returns the frame dimensions.
func (f Frame) Size() (width, height uint16) {
	return f.width, f.height
}

// Len returns the total cell count, including empty positions.
func (f Frame) Len() int {
	return len(f.cells)
}

// IsEmpty returns true if the frame holds no cells at all.
func (f Frame) IsEmpty() bool {
	return len(f.cells) == 0
}

// Cells returns the backing row-major cell slice.
func (f Frame) Cells() []*Cell {
	return f.cells
}

// At returns the cell at the given position, or nil if the position is
// empty or out of range.
func (f Frame) At(x, y uint16) *Cell {
	if x >= f.width || y >= f.height {
		return nil
	}
	return f.cells[int(y)*int(f.width)+int(x)]
}

// Line returns the cells of one row. Out-of-range rows yield nil.
func (f Frame) Line(row uint16) []*Cell {
	if row >= f.height {
		return nil
	}

	begin := int(row) * int(f.width)
	return f.cells[begin : begin+int(f.width)]
}
