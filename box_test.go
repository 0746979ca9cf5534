package termgrid

import "testing"

func TestBoxAccessors(t *testing.T) {
	box := At(3, 5, Rect{Width: 4, Height: 2})

	x, y := box.Pos()
	if x != 3 || y != 5 {
		t.Errorf("Pos() = (%d, %d), want (3, 5)", x, y)
	}
	if box.Width() != 4 {
		t.Errorf("Width() = %d, want 4", box.Width())
	}
	if box.Height() != 2 {
		t.Errorf("Height() = %d, want 2", box.Height())
	}
	if box.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestBoxApexes(t *testing.T) {
	box := At(3, 5, Rect{Width: 4, Height: 2})

	outerX, outerY := box.OuterApex()
	if outerX != 7 || outerY != 7 {
		t.Errorf("OuterApex() = (%d, %d), want (7, 7)", outerX, outerY)
	}

	innerX, innerY := box.InnerApex()
	if innerX != 6 || innerY != 6 {
		t.Errorf("InnerApex() = (%d, %d), want (6, 6)", innerX, innerY)
	}
}

func TestBoxInnerApexEmpty(t *testing.T) {
	box := At(3, 5, Rect{Width: 0, Height: 0})

	innerX, innerY := box.InnerApex()
	if innerX != 3 || innerY != 5 {
		t.Errorf("InnerApex() = (%d, %d), want (3, 5)", innerX, innerY)
	}
}

func TestBoxIsEmpty(t *testing.T) {
	if !At(0, 0, Rect{Width: 0, Height: 3}).IsEmpty() {
		t.Error("zero-width box should be empty")
	}
	if !At(0, 0, Rect{Width: 3, Height: 0}).IsEmpty() {
		t.Error("zero-height box should be empty")
	}
}

func TestBoxRebase(t *testing.T) {
	box := At(2, 3, Rect{Width: 1, Height: 1})
	box.Rebase(func(x, y *uint16) {
		*x += 10
		*y += 20
	})

	x, y := box.Pos()
	if x != 12 || y != 23 {
		t.Errorf("Pos() after Rebase = (%d, %d), want (12, 23)", x, y)
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name string
		a    Box[Rect]
		b    Box[Rect]
		want bool
	}{
		{
			name: "overlapping",
			a:    At(0, 0, Rect{Width: 5, Height: 1}),
			b:    At(3, 0, Rect{Width: 5, Height: 1}),
			want: true,
		},
		{
			name: "contained",
			a:    At(0, 0, Rect{Width: 10, Height: 10}),
			b:    At(2, 2, Rect{Width: 3, Height: 3}),
			want: true,
		},
		{
			name: "identical",
			a:    At(1, 1, Rect{Width: 2, Height: 2}),
			b:    At(1, 1, Rect{Width: 2, Height: 2}),
			want: true,
		},
		{
			name: "touching right edge",
			a:    At(0, 0, Rect{Width: 5, Height: 1}),
			b:    At(5, 0, Rect{Width: 5, Height: 1}),
			want: false,
		},
		{
			name: "touching bottom edge",
			a:    At(0, 0, Rect{Width: 5, Height: 2}),
			b:    At(0, 2, Rect{Width: 5, Height: 2}),
			want: false,
		},
		{
			name: "disjoint rows",
			a:    At(0, 0, Rect{Width: 5, Height: 1}),
			b:    At(0, 1, Rect{Width: 5, Height: 1}),
			want: false,
		},
		{
			name: "empty a",
			a:    At(0, 0, Rect{Width: 0, Height: 1}),
			b:    At(0, 0, Rect{Width: 5, Height: 1}),
			want: false,
		},
		{
			name: "empty b inside a",
			a:    At(0, 0, Rect{Width: 10, Height: 10}),
			b:    At(5, 5, Rect{Width: 0, Height: 0}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conflicts(tt.a, tt.b); got != tt.want {
				t.Errorf("Conflicts(a, b) = %v, want %v", got, tt.want)
			}
			if got := Conflicts(tt.b, tt.a); got != tt.want {
				t.Errorf("Conflicts(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsPos(t *testing.T) {
	box := At(2, 3, Rect{Width: 4, Height: 2})

	tests := []struct {
		x, y uint16
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{1, 3, false},
		{6, 3, false},
		{2, 5, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := box.ContainsPos(tt.x, tt.y); got != tt.want {
			t.Errorf("ContainsPos(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestContainsPosEmptyBox(t *testing.T) {
	box := At(2, 3, Rect{Width: 0, Height: 0})
	if box.ContainsPos(2, 3) {
		t.Error("empty box should contain nothing, not even its own base")
	}
}
