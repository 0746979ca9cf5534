package termgrid

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// ANSIWriter serializes paint commands as ANSI escape sequences: a cursor
// position (CUP) per command, SGR color changes as needed, then the run's
// characters. It targets any io.Writer, typically a raw-mode terminal.
type ANSIWriter struct {
	w io.Writer
}

// NewANSIWriter creates a writer emitting to w.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: w}
}

// WriteCommands emits the paint commands in order. Styles are reset before
// each command and after the last one; within a command the SGR sequence
// is re-emitted only when a cell's colors differ from its predecessor's.
func (a *ANSIWriter) WriteCommands(cmds []PaintCommand) error {
	for _, cmd := range cmds {
		if err := a.writeCommand(cmd); err != nil {
			return err
		}
	}

	if len(cmds) > 0 {
		if _, err := io.WriteString(a.w, "\x1b[0m"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFrame extracts the frame's paint commands and emits them.
func (a *ANSIWriter) WriteFrame(frame Box[Frame]) error {
	return a.WriteCommands(PaintCommands(frame))
}

func (a *ANSIWriter) writeCommand(cmd PaintCommand) error {
	x, y := cmd.Pos()

	// CUP is 1-based: row first, then column.
	if _, err := fmt.Fprintf(a.w, "\x1b[%d;%dH", y+1, x+1); err != nil {
		return err
	}

	var fg, bg tcell.Color
	for i, cell := range cmd.cells {
		if i == 0 || cell.Fg != fg || cell.Bg != bg {
			fg, bg = cell.Fg, cell.Bg
			if _, err := io.WriteString(a.w, sgr(fg, bg)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(a.w, string(cell.Ch)); err != nil {
			return err
		}
	}
	return nil
}

// sgr builds the SGR sequence selecting the given colors, starting from a
// full attribute reset. Valid colors are emitted as 24-bit color
// selections; default colors are covered by the reset itself.
func sgr(fg, bg tcell.Color) string {
	seq := "\x1b[0"
	if fg.Valid() {
		r, g, b := fg.TrueColor().RGB()
		seq += fmt.Sprintf(";38;2;%d;%d;%d", r, g, b)
	}
	if bg.Valid() {
		r, g, b := bg.TrueColor().RGB()
		seq += fmt.Sprintf(";48;2;%d;%d;%d", r, g, b)
	}
	return seq + "m"
}
