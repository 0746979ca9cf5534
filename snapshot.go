package termgrid

import "strings"

// Snapshot is a plain-text capture of a composited frame, suitable for
// assertions, golden files, or JSON serialization.
type Snapshot struct {
	Width  uint16   `json:"width"`
	Height uint16   `json:"height"`
	Lines  []string `json:"lines"`
}

// Snapshot captures the frame's text content. Empty cells render as
// spaces and trailing blanks are trimmed from each line.
func (f Frame) Snapshot() *Snapshot {
	lines := make([]string, f.height)

	for row := uint16(0); row < f.height; row++ {
		runes := make([]rune, 0, f.width)
		for _, cell := range f.Line(row) {
			if cell == nil {
				runes = append(runes, ' ')
			} else {
				runes = append(runes, cell.Ch)
			}
		}
		lines[row] = strings.TrimRight(string(runes), " ")
	}

	return &Snapshot{Width: f.width, Height: f.height, Lines: lines}
}

// String returns the snapshot's lines joined by newlines.
func (s *Snapshot) String() string {
	return strings.Join(s.Lines, "\n")
}
