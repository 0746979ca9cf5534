package termgrid

import "sort"

// Canvas stacks positioned layers by z-index. Layers keep their identity
// and order as long as their z-indexes differ; flattening walks them from
// the lowest z-index up, so higher layers win cell-for-cell.
//
// The zero value is an empty canvas ready for use.
type Canvas struct {
	front  int
	width  uint16
	height uint16
	layers map[int]Box[Layer]
}

// Size returns the cached canvas dimensions: the maximum outer apex over
// all layers ever applied.
func (c Canvas) Size() (width, height uint16) {
	return c.width, c.height
}

// Len returns the number of layers on the canvas.
func (c Canvas) Len() int {
	return len(c.layers)
}

// ZOrder returns the occupied z-indexes in ascending order.
func (c Canvas) ZOrder() []int {
	zs := make([]int, 0, len(c.layers))
	for z := range c.layers {
		zs = append(zs, z)
	}
	sort.Ints(zs)
	return zs
}

// Layer returns the layer at the given z-index. The second return is false
// if the index is unoccupied.
func (c Canvas) Layer(z int) (Box[Layer], bool) {
	layer, ok := c.layers[z]
	return layer, ok
}

// apply stores the layer at z, growing the cached dimensions and advancing
// the front counter past z.
func (c *Canvas) apply(z int, layer Box[Layer]) {
	if c.layers == nil {
		c.layers = make(map[int]Box[Layer])
	}

	offsetX, offsetY := layer.Pos()
	c.width = max(c.width, offsetX+layer.Width())
	c.height = max(c.height, offsetY+layer.Height())

	c.layers[z] = layer
	c.front = max(c.front, z+1)
}

// OverlapLayer places the layer on top of everything else, at the current
// front index.
func (c *Canvas) OverlapLayer(layer Box[Layer]) {
	c.apply(c.front, layer)
}

// Insert places the layer at the given z-index, unconditionally replacing
// any occupant.
func (c *Canvas) Insert(z int, layer Box[Layer]) {
	c.apply(z, layer)
}

// Merge overlaps the layer onto the occupant of the given z-index, the new
// layer winning where they collide. Does nothing if the index is
// unoccupied.
func (c *Canvas) Merge(z int, layer Box[Layer]) {
	occupant, ok := c.layers[z]
	if !ok {
		return
	}

	rootX, rootY := occupant.Pos()
	c.apply(z, occupant.Inner().Overlap(rootX, rootY, layer))
}

// InsertOrMerge merges into the occupant of the given z-index, or inserts
// if the index is free.
func (c *Canvas) InsertOrMerge(z int, layer Box[Layer]) {
	if _, ok := c.layers[z]; ok {
		c.Merge(z, layer)
	} else {
		c.Insert(z, layer)
	}
}

// CreateView flattens the canvas into a dense view. Layers are stacked from
// the lowest z-index up and every span copy is unconditional, so a higher
// layer's cells always win, even over non-empty content below. Cells no
// layer covers stay empty.
func (c Canvas) CreateView() View {
	cells := make([]*Cell, int(c.width)*int(c.height))

	for _, z := range c.ZOrder() {
		layer := c.layers[z]
		offsetX, offsetY := layer.Pos()

		for _, span := range layer.Inner().Spans() {
			spanX, spanY := span.Pos()
			absX, absY := offsetX+spanX, offsetY+spanY
			begin := int(absY)*int(c.width) + int(absX)

			for i, cell := range span.Inner().cells {
				cell := cell
				cells[begin+i] = &cell
			}
		}
	}

	return View{width: c.width, height: c.height, cells: cells}
}
