package termgrid

// View is an immutable dense grid of optional cells, the flattened output
// of a canvas. A nil entry means no layer painted that position.
type View struct {
	width  uint16
	height uint16
	cells  []*Cell
}

// NewView creates a view over the given row-major cells. The slice must
// hold exactly width*height entries; the view takes ownership of it.
func NewView(width, height uint16, cells []*Cell) View {
	return View{width: width, height: height, cells: cells}
}

// Size returns the view dimensions.
func (v View) Size() (width, height uint16) {
	return v.width, v.height
}

// Len returns the total cell count, including empty positions.
func (v View) Len() int {
	return len(v.cells)
}

// IsEmpty returns true if the view holds no cells at all.
func (v View) IsEmpty() bool {
	return len(v.cells) == 0
}

// Cells returns the backing row-major cell slice.
func (v View) Cells() []*Cell {
	return v.cells
}

// At returns the cell at the given position, or nil if the position is
// empty or out of range.
func (v View) At(x, y uint16) *Cell {
	if x >= v.width || y >= v.height {
		return nil
	}
	return v.cells[int(y)*int(v.width)+int(x)]
}

// Line returns the cells of one row. Out-of-range rows yield nil.
func (v View) Line(row uint16) []*Cell {
	if row >= v.height {
		return nil
	}

	begin := int(row) * int(v.width)
	return v.cells[begin : begin+int(v.width)]
}
