package termgrid

// Window represents the rectangle an actual render targets: declared
// bounds plus a FIFO queue of positioned views awaiting flattening.
// Queued views are composited first-in first, so views queued later win
// where they overlap.
type Window struct {
	width  uint16
	height uint16
	views  []Box[View]
}

// NewWindow creates an empty window with the given bounds.
func NewWindow(width, height uint16) Window {
	return Window{width: width, height: height}
}

// WindowFromViews creates a window with its queue pre-filled.
func WindowFromViews(width, height uint16, views []Box[View]) Window {
	return Window{width: width, height: height, views: views}
}

// Size returns the declared window bounds.
func (w Window) Size() (width, height uint16) {
	return w.width, w.height
}

// Resize changes the declared bounds. Queued views are untouched and not
// re-validated; they are clipped against the new bounds at flatten time.
func (w *Window) Resize(width, height uint16) {
	w.width = width
	w.height = height
}

// Overlap queues a positioned view at the back of the window.
func (w *Window) Overlap(view Box[View]) {
	w.views = append(w.views, view)
}

// Flatten composites the window's queued views into a dense frame of
// exactly width*height cells, anchored at the window box's own base.
//
// Views are processed in queue order and every copy is unconditional: an
// empty cell in a later view overwrites earlier content, punching a
// visible hole. A view's horizontal offset selects both the source columns
// read and the destination columns written, and the drawable area is
// clamped to the window bounds and the view's own height, so flattening is
// total for any input.
func Flatten(window Box[Window]) Box[Frame] {
	rootX, rootY := window.Pos()
	win := window.Inner()

	cells := make([]*Cell, int(win.width)*int(win.height))

	for _, view := range win.views {
		viewX, viewY := view.Pos()
		if viewX >= win.width || viewY >= win.height {
			continue
		}

		drawableWidth := min(win.width, satSub(view.Width(), viewX))
		drawableWidth = min(drawableWidth, win.width-viewX)
		drawableHeight := min(win.height-viewY, view.Height())

		if drawableWidth == 0 || drawableHeight == 0 {
			continue
		}

		inner := view.Inner()
		for relY := uint16(0); relY < drawableHeight; relY++ {
			line := inner.Line(relY)
			src := line[viewX : viewX+drawableWidth]
			begin := int(win.width)*int(viewY+relY) + int(viewX)

			copy(cells[begin:begin+int(drawableWidth)], src)
		}
	}

	return At(rootX, rootY, Frame{width: win.width, height: win.height, cells: cells})
}

// satSub returns a-b, saturating at zero.
func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
