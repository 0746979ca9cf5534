package termgrid

import "github.com/gdamore/tcell/v2"

// Span is a single-row strip of cells. Spans grow and shrink at either end
// and can be split by sorted column offsets, which is the primitive the
// layer conflict resolution is built on.
//
// The zero value is an empty span ready for use.
type Span struct {
	cells []Cell
}

// NewSpan creates a span from a string with default colors, one cell per
// rune.
func NewSpan(s string) Span {
	var span Span
	for _, r := range s {
		span.PushBack(NewCell(r))
	}
	return span
}

// NewSpanFg creates a span from a string with a uniform foreground color.
func NewSpanFg(s string, fg tcell.Color) Span {
	span := NewSpan(s)
	for i := range span.cells {
		span.cells[i].Fg = fg
	}
	return span
}

// NewSpanBg creates a span from a string with a uniform background color.
func NewSpanBg(s string, bg tcell.Color) Span {
	span := NewSpan(s)
	for i := range span.cells {
		span.cells[i].Bg = bg
	}
	return span
}

// SpanOf creates a span from individual cells.
func SpanOf(cells ...Cell) Span {
	return Span{cells: append([]Cell(nil), cells...)}
}

// Len returns the number of cells in the span.
func (s Span) Len() uint16 {
	return uint16(len(s.cells))
}

// IsEmpty returns true if the span has no cells.
func (s Span) IsEmpty() bool {
	return len(s.cells) == 0
}

// Size returns (length, 1); spans are inherently single-row.
func (s Span) Size() (width, height uint16) {
	return s.Len(), 1
}

// Get returns a pointer to the cell at idx, or nil if idx is out of range.
func (s *Span) Get(idx int) *Cell {
	if idx < 0 || idx >= len(s.cells) {
		return nil
	}
	return &s.cells[idx]
}

// Replace swaps the cell at idx for the given one and returns the previous
// cell. The second return is false if idx is out of range.
func (s *Span) Replace(idx int, cell Cell) (Cell, bool) {
	if idx < 0 || idx >= len(s.cells) {
		return Cell{}, false
	}
	prev := s.cells[idx]
	s.cells[idx] = cell
	return prev, true
}

// PushBack appends a cell to the end of the span.
func (s *Span) PushBack(cell Cell) {
	s.cells = append(s.cells, cell)
}

// PushFront prepends a cell to the start of the span.
func (s *Span) PushFront(cell Cell) {
	s.cells = append([]Cell{cell}, s.cells...)
}

// PopBack removes and returns the last cell. Popping an empty span is a
// no-op and returns false.
func (s *Span) PopBack() (Cell, bool) {
	if len(s.cells) == 0 {
		return Cell{}, false
	}
	cell := s.cells[len(s.cells)-1]
	s.cells = s.cells[:len(s.cells)-1]
	return cell, true
}

// PopFront removes and returns the first cell. Popping an empty span is a
// no-op and returns false.
func (s *Span) PopFront() (Cell, bool) {
	if len(s.cells) == 0 {
		return Cell{}, false
	}
	cell := s.cells[0]
	s.cells = s.cells[1:]
	return cell, true
}

// TruncateFront drops n cells from the start of the span. Dropping more
// cells than the span holds leaves it empty.
func (s *Span) TruncateFront(n uint16) {
	if int(n) >= len(s.cells) {
		s.cells = nil
		return
	}
	s.cells = s.cells[n:]
}

// TruncateBack drops n cells from the end of the span. Dropping more cells
// than the span holds leaves it empty.
func (s *Span) TruncateBack(n uint16) {
	if int(n) >= len(s.cells) {
		s.cells = nil
		return
	}
	s.cells = s.cells[:len(s.cells)-int(n)]
}

// Append transfers all cells from source to the end of the span, draining
// source.
func (s *Span) Append(source *Span) {
	s.cells = append(s.cells, source.cells...)
	source.cells = nil
}

// PushString appends the runes of str as default-colored cells.
func (s *Span) PushString(str string) {
	for _, r := range str {
		s.PushBack(NewCell(r))
	}
}

// Cells returns a copy of the span's cells.
func (s Span) Cells() []Cell {
	return append([]Cell(nil), s.cells...)
}

// Text returns the span's characters as a string, without styling.
func (s Span) Text() string {
	runes := make([]rune, len(s.cells))
	for i, c := range s.cells {
		runes[i] = c.Ch
	}
	return string(runes)
}

// Equal returns true if both spans hold identical cells in the same order.
func (s Span) Equal(other Span) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i, c := range s.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// SplitBy slices the span at the given sorted column offsets and returns
// len(offsets)+1 fragments: fragment i covers [offsets[i-1], offsets[i]),
// with 0 and the span length as implicit outer bounds.
//
// A fragment is nil when its slice falls entirely outside the span; an
// offset beyond the span length clamps the preceding fragment to the
// remaining cells. Callers must treat nil as "nothing to keep there", not
// as an error. Unsorted offsets are a programming error.
func (s Span) SplitBy(offsets []uint16) []*Span {
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			panic("termgrid: SplitBy offsets not sorted")
		}
	}

	parts := make([]*Span, 0, len(offsets)+1)
	prev := 0

	for _, off := range offsets {
		parts = append(parts, s.slice(prev, int(off)))
		prev = int(off)
	}

	return append(parts, s.slice(prev, len(s.cells)))
}

// slice returns the cells in [begin, end) as a fresh span, clamping end to
// the available range. Returns nil when begin is already past the end of
// the span.
func (s Span) slice(begin, end int) *Span {
	if begin > len(s.cells) {
		return nil
	}
	if end > len(s.cells) {
		end = len(s.cells)
	}
	return &Span{cells: append([]Cell(nil), s.cells[begin:end]...)}
}
