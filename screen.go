package termgrid

import "github.com/gdamore/tcell/v2"

// ScreenRenderer draws paint commands onto a tcell screen. It is the
// device-side collaborator of the engine: the engine produces abstract
// paint commands, the renderer turns them into terminal writes.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer creates a renderer targeting the given screen. The
// caller owns the screen lifecycle (Init, Fini).
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Draw writes the paint commands into the screen's cell buffer. Nothing is
// visible until the screen content is shown.
func (r *ScreenRenderer) Draw(cmds []PaintCommand) {
	for _, cmd := range cmds {
		x, y := cmd.Pos()
		for i, cell := range cmd.cells {
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			r.screen.SetContent(int(x)+i, int(y), cell.Ch, nil, style)
		}
	}
}

// DrawFrame extracts the frame's paint commands, draws them, and shows the
// result.
func (r *ScreenRenderer) DrawFrame(frame Box[Frame]) {
	r.Draw(PaintCommands(frame))
	r.screen.Show()
}
