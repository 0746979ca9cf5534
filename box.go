package termgrid

// Sized is implemented by any payload that can report its dimensions in
// terminal cells. A width or height of zero is legal and marks the payload
// as empty for geometry purposes.
type Sized interface {
	Size() (width, height uint16)
}

// Rect is a bare width x height area with no content. It is mostly useful
// as a synthetic probe for containment tests.
type Rect struct {
	Width  uint16
	Height uint16
}

// Size returns the rect dimensions.
func (r Rect) Size() (width, height uint16) {
	return r.Width, r.Height
}

// Box binds a payload to an absolute base coordinate. The origin is the
// terminal's top-left corner; units are columns and rows.
//
// A box owns its payload: the compositing types hand boxes around by value
// and never mutate a payload after placing it.
type Box[T Sized] struct {
	x     uint16
	y     uint16
	inner T
}

// At places inner at the given base coordinate.
func At[T Sized](x, y uint16, inner T) Box[T] {
	return Box[T]{x: x, y: y, inner: inner}
}

// Pos returns the base coordinate.
func (b Box[T]) Pos() (x, y uint16) {
	return b.x, b.y
}

// Inner returns the payload.
func (b Box[T]) Inner() T {
	return b.inner
}

// Width returns the payload width.
func (b Box[T]) Width() uint16 {
	w, _ := b.inner.Size()
	return w
}

// Height returns the payload height.
func (b Box[T]) Height() uint16 {
	_, h := b.inner.Size()
	return h
}

// IsEmpty returns true if either dimension of the payload is zero.
func (b Box[T]) IsEmpty() bool {
	w, h := b.inner.Size()
	return w == 0 || h == 0
}

// OuterApex returns the exclusive far corner: base plus size.
func (b Box[T]) OuterApex() (x, y uint16) {
	w, h := b.inner.Size()
	return b.x + w, b.y + h
}

// InnerApex returns the inclusive far corner. Dimensions are clamped to at
// least one so a zero-size box still reports a point instead of
// underflowing.
func (b Box[T]) InnerApex() (x, y uint16) {
	w, h := b.inner.Size()
	return b.x + max(w, 1) - 1, b.y + max(h, 1) - 1
}

// Rebase applies a caller-supplied adjustment to the base coordinate in
// place.
func (b *Box[T]) Rebase(f func(x, y *uint16)) {
	f(&b.x, &b.y)
}

// ContainsPos returns true if the given absolute coordinate falls inside
// the box area. Implemented as a conflict test against a synthetic 1x1 box.
func (b Box[T]) ContainsPos(x, y uint16) bool {
	return Conflicts(b, At(x, y, Rect{Width: 1, Height: 1}))
}

// Conflicts reports whether two placed boxes overlap. Empty boxes never
// conflict, and edges that merely touch do not count as overlap.
//
// Conflicts is symmetric: Conflicts(a, b) == Conflicts(b, a) for all boxes.
func Conflicts[A, B Sized](a Box[A], b Box[B]) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}

	aOuterX, aOuterY := a.OuterApex()
	bOuterX, bOuterY := b.OuterApex()

	return aOuterX > b.x && bOuterX > a.x && aOuterY > b.y && bOuterY > a.y
}
