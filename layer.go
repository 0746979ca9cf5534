package termgrid

// Layer holds placed spans on a single z-plane. After any insertion
// returns, no two spans in the layer occupy the same cell; the insertion
// policies differ only in who yields when a collision happens.
//
// The cached width and height cover every span the layer has ever seen:
// they grow as spans are pushed and never shrink, even if spans are later
// taken out.
//
// The zero value is an empty layer ready for use.
type Layer struct {
	width  uint16
	height uint16
	spans  []Box[Span]
}

// Size returns the cached layer dimensions.
func (l Layer) Size() (width, height uint16) {
	return l.width, l.height
}

// Spans returns the placed spans. The slice is the layer's own storage and
// carries no particular order.
func (l Layer) Spans() []Box[Span] {
	return l.spans
}

// push appends a span and grows the cached dimensions to cover it.
func (l *Layer) push(span Box[Span]) {
	outerX, outerY := span.OuterApex()

	l.width = max(l.width, outerX)
	l.height = max(l.height, outerY)

	l.spans = append(l.spans, span)
}

// resolveConflict splits base around overlap and returns the surviving
// fragments of base. Both spans must sit on the same row, which the AABB
// test guarantees for height-1 payloads. Empty fragments are dropped.
func resolveConflict(base, overlap Box[Span]) []Box[Span] {
	if !Conflicts(base, overlap) {
		return []Box[Span]{base}
	}

	overlapBegin, _ := overlap.Pos()
	overlapEnd, _ := overlap.OuterApex()
	baseX, baseY := base.Pos()

	includesBegin := base.ContainsPos(overlapBegin, baseY)
	includesEnd := base.ContainsPos(overlapEnd-1, baseY)

	var solved []Box[Span]

	switch {
	case includesBegin && includesEnd:
		// Overlap is strictly interior: keep the left and right remainders.
		parts := base.Inner().SplitBy([]uint16{overlapBegin - baseX, overlapEnd - baseX})
		if len(parts) != 3 {
			panic("termgrid: Span.SplitBy returned wrong fragment count")
		}
		if parts[0] != nil {
			solved = append(solved, At(baseX, baseY, *parts[0]))
		}
		if parts[2] != nil {
			solved = append(solved, At(overlapEnd, baseY, *parts[2]))
		}
	case includesBegin:
		// Overlap exits past the right edge: keep the left remainder.
		parts := base.Inner().SplitBy([]uint16{overlapBegin - baseX})
		if len(parts) != 2 {
			panic("termgrid: Span.SplitBy returned wrong fragment count")
		}
		if parts[0] != nil {
			solved = append(solved, At(baseX, baseY, *parts[0]))
		}
	case includesEnd:
		// Overlap enters from before the left edge: keep the right remainder.
		parts := base.Inner().SplitBy([]uint16{overlapEnd - baseX})
		if len(parts) != 2 {
			panic("termgrid: Span.SplitBy returned wrong fragment count")
		}
		if parts[1] != nil {
			solved = append(solved, At(overlapEnd, baseY, *parts[1]))
		}
	default:
		// Overlap envelops base entirely; nothing survives.
	}

	kept := solved[:0]
	for _, s := range solved {
		if !s.IsEmpty() {
			kept = append(kept, s)
		}
	}
	return kept
}

// PushWrite inserts a span that always wins: every existing span is split
// around it and only the fragments outside the new span survive. Empty
// spans are ignored.
func (l *Layer) PushWrite(span Box[Span]) {
	if span.IsEmpty() {
		return
	}

	var resolved []Box[Span]
	for _, existing := range l.spans {
		resolved = append(resolved, resolveConflict(existing, span)...)
	}

	l.spans = l.spans[:0]
	for _, s := range resolved {
		if !s.IsEmpty() {
			l.push(s)
		}
	}

	for _, s := range l.spans {
		if Conflicts(s, span) {
			panic("termgrid: PushWrite left a conflicting span")
		}
	}

	l.push(span)
}

// PushFixed inserts a span that yields to what is already there: existing
// spans are authoritative and the new span is clipped to the gaps between
// them on its row. Existing spans are never modified. Empty spans are
// ignored.
func (l *Layer) PushFixed(span Box[Span]) {
	if span.IsEmpty() {
		return
	}

	_, row := span.Pos()
	var sameRow []Box[Span]
	for _, s := range l.spans {
		if _, y := s.Pos(); y == row {
			sameRow = append(sameRow, s)
		}
	}

	// Clip the candidate against one conflicting span at a time; fragments
	// go back on the queue until they fit a gap. Terminates because every
	// split strictly shrinks the total candidate width.
	queue := []Box[Span]{span}
	var keep []Box[Span]

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		conflict, found := Box[Span]{}, false
		for _, s := range sameRow {
			if Conflicts(s, item) {
				conflict, found = s, true
				break
			}
		}

		if !found {
			keep = append(keep, item)
			continue
		}

		queue = append(queue, resolveConflict(item, conflict)...)
	}

	l.pruneEmpty()

	for _, fragment := range keep {
		if !fragment.IsEmpty() {
			l.push(fragment)
		}
	}
}

// PushOnlyValid inserts the span unchanged if it conflicts with nothing,
// and otherwise leaves the layer untouched. Empty spans are ignored.
func (l *Layer) PushOnlyValid(span Box[Span]) {
	if span.IsEmpty() {
		return
	}

	for _, s := range l.spans {
		if Conflicts(s, span) {
			return
		}
	}

	l.pruneEmpty()
	l.push(span)
}

// Overlap creates a new layer by stacking upper on top of this one. The
// upper layer's spans are translated by its box offset and written over
// the receiver's spans. The result is anchored at the component-wise
// minimum of selfRoot and upper's base.
func (l Layer) Overlap(selfRootX, selfRootY uint16, upper Box[Layer]) Box[Layer] {
	var merged Layer

	for _, span := range l.spans {
		merged.push(span)
	}

	upperX, upperY := upper.Pos()
	for _, span := range upper.Inner().spans {
		relX, relY := span.Pos()
		merged.PushWrite(At(upperX+relX, upperY+relY, span.Inner()))
	}

	return At(min(selfRootX, upperX), min(selfRootY, upperY), merged)
}

// AddOffset translates every placed span by (dx, dy) and grows the cached
// dimensions by the same amount.
func (l *Layer) AddOffset(dx, dy uint16) {
	l.width += dx
	l.height += dy

	for i := range l.spans {
		l.spans[i].Rebase(func(x, y *uint16) {
			*x += dx
			*y += dy
		})
	}
}

// TakeWith removes and returns the first span matching the condition. The
// second return is false if nothing matched.
func (l *Layer) TakeWith(f func(Box[Span]) bool) (Box[Span], bool) {
	for i, s := range l.spans {
		if f(s) {
			l.spans[i] = l.spans[len(l.spans)-1]
			l.spans = l.spans[:len(l.spans)-1]
			return s, true
		}
	}
	return Box[Span]{}, false
}

// pruneEmpty drops empty spans left behind by earlier operations.
func (l *Layer) pruneEmpty() {
	kept := l.spans[:0]
	for _, s := range l.spans {
		if !s.IsEmpty() {
			kept = append(kept, s)
		}
	}
	l.spans = kept
}

// conflictFree reports whether no two placed spans overlap. This is the
// layer's central invariant; tests sweep it after every insertion.
func (l Layer) conflictFree() bool {
	for i := range l.spans {
		for j := i + 1; j < len(l.spans); j++ {
			if Conflicts(l.spans[i], l.spans[j]) {
				return false
			}
		}
	}
	return true
}
