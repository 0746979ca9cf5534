package termgrid

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// testFrame builds a width x height frame and fills it with one string per
// (x, y) entry.
func testFrame(width, height uint16, runs map[[2]uint16]string) Frame {
	cells := make([]*Cell, int(width)*int(height))
	for pos, s := range runs {
		for i, r := range []rune(s) {
			cell := NewCell(r)
			cells[int(pos[1])*int(width)+int(pos[0])+i] = &cell
		}
	}
	return NewFrame(width, height, cells)
}

func TestPaintCommandAccessors(t *testing.T) {
	cells := []Cell{NewCell('a'), NewCell('b')}
	cmd := NewPaintCommand(3, 4, cells)

	x, y := cmd.Pos()
	if x != 3 || y != 4 {
		t.Errorf("Pos() = (%d, %d), want (3, 4)", x, y)
	}
	if cmd.Text() != "ab" {
		t.Errorf("Text() = %q, want %q", cmd.Text(), "ab")
	}

	cells[0] = NewCell('z')
	if cmd.Text() != "ab" {
		t.Error("NewPaintCommand must copy its cells")
	}
}

func TestPaintCommandEqual(t *testing.T) {
	a := NewPaintCommand(1, 2, []Cell{NewCell('x')})

	if !a.Equal(NewPaintCommand(1, 2, []Cell{NewCell('x')})) {
		t.Error("identical commands should be equal")
	}
	if a.Equal(NewPaintCommand(0, 2, []Cell{NewCell('x')})) {
		t.Error("different positions should not be equal")
	}
	if a.Equal(NewPaintCommand(1, 2, []Cell{NewCell('y')})) {
		t.Error("different cells should not be equal")
	}
	if a.Equal(NewPaintCommand(1, 2, []Cell{NewCellFg('x', tcell.ColorRed)})) {
		t.Error("different colors should not be equal")
	}
}

func TestPaintCommandsRuns(t *testing.T) {
	frame := testFrame(8, 2, map[[2]uint16]string{
		{0, 0}: "ab",
		{4, 0}: "cd",
		{2, 1}: "ef",
	})

	cmds := PaintCommands(At(0, 0, frame))
	if len(cmds) != 3 {
		t.Fatalf("len(cmds) = %d, want 3", len(cmds))
	}

	want := []PaintCommand{
		NewPaintCommand(0, 0, []Cell{NewCell('a'), NewCell('b')}),
		NewPaintCommand(4, 0, []Cell{NewCell('c'), NewCell('d')}),
		NewPaintCommand(2, 1, []Cell{NewCell('e'), NewCell('f')}),
	}
	for i, cmd := range cmds {
		if !cmd.Equal(want[i]) {
			x, y := cmd.Pos()
			t.Errorf("cmds[%d] = %q at (%d, %d), want %q", i, cmd.Text(), x, y, want[i].Text())
		}
	}
}

func TestPaintCommandsRowBoundary(t *testing.T) {
	frame := testFrame(3, 2, map[[2]uint16]string{
		{0, 0}: "abc",
		{0, 1}: "d",
	})

	cmds := PaintCommands(At(0, 0, frame))
	if len(cmds) != 2 {
		t.Fatalf("len(cmds) = %d, want 2: runs must not span rows", len(cmds))
	}
	if cmds[0].Text() != "abc" || cmds[1].Text() != "d" {
		t.Errorf("cmds = [%q %q], want [abc d]", cmds[0].Text(), cmds[1].Text())
	}

	if _, y := cmds[1].Pos(); y != 1 {
		t.Errorf("cmds[1] row = %d, want 1", y)
	}
}

func TestPaintCommandsOffset(t *testing.T) {
	frame := testFrame(5, 1, map[[2]uint16]string{
		{2, 0}: "hi",
	})

	cmds := PaintCommands(At(3, 4, frame))
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}

	x, y := cmds[0].Pos()
	if x != 5 || y != 4 {
		t.Errorf("cmds[0] Pos() = (%d, %d), want (5, 4)", x, y)
	}
}

func TestPaintCommandsEmptyFrame(t *testing.T) {
	if cmds := PaintCommands(At(0, 0, testFrame(4, 2, nil))); len(cmds) != 0 {
		t.Errorf("all-empty frame should yield no commands, got %d", len(cmds))
	}
	if cmds := PaintCommands(At(0, 0, NewFrame(0, 0, nil))); cmds != nil {
		t.Errorf("zero-size frame should yield nil, got %v", cmds)
	}
}

func TestPaintCommandsOverlappingViews(t *testing.T) {
	window := NewWindow(3, 3)
	window.Overlap(At(0, 0, textView("...", "...", "...")))
	window.Overlap(At(1, 1, textView("OOO", "OOO", "OOO")))

	cmds := PaintCommands(Flatten(At(0, 0, window)))
	if len(cmds) != 3 {
		t.Fatalf("len(cmds) = %d, want 3", len(cmds))
	}

	want := []string{"...", ".OO", ".OO"}
	for i, cmd := range cmds {
		x, y := cmd.Pos()
		if x != 0 || y != uint16(i) {
			t.Errorf("cmds[%d] Pos() = (%d, %d), want (0, %d)", i, x, y, i)
		}
		if cmd.Text() != want[i] {
			t.Errorf("cmds[%d] = %q, want %q", i, cmd.Text(), want[i])
		}
	}
}

func TestPaintCommandsFromPipeline(t *testing.T) {
	var canvas Canvas
	canvas.OverlapLayer(textLayer(0, 0, "Hello, World!"))
	canvas.OverlapLayer(textLayer(2, 0, "________"))

	window := NewWindow(13, 1)
	window.Overlap(At(0, 0, canvas.CreateView()))

	cmds := PaintCommands(Flatten(At(0, 0, window)))
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}
	if cmds[0].Text() != "He________ld!" {
		t.Errorf("cmds[0] = %q, want %q", cmds[0].Text(), "He________ld!")
	}
}
