// Package termgrid provides a character-grid compositing engine for terminal
// user interfaces.
//
// The engine lets you describe rectangular regions of styled text, stack them
// into z-ordered layers, merge the layers into flat views, and assemble
// multiple views into a single frame that reduces to a minimal sequence of
// paint commands. It performs no terminal I/O of its own; renderers that
// consume paint commands are provided as separate collaborators.
//
// # Quick Start
//
// Compose a layer, flatten it, and extract paint commands:
//
//	var layer termgrid.Layer
//	layer.PushWrite(termgrid.At(0, 0, termgrid.NewSpan("Hello, World!")))
//	layer.PushWrite(termgrid.At(2, 0, termgrid.NewSpan("________")))
//
//	var canvas termgrid.Canvas
//	canvas.OverlapLayer(termgrid.At(0, 0, layer))
//
//	window := termgrid.NewWindow(80, 24)
//	window.Overlap(termgrid.At(0, 0, canvas.CreateView()))
//
//	frame := termgrid.Flatten(termgrid.At(0, 0, window))
//	cmds := termgrid.PaintCommands(frame)
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Box]: binds any sized payload to an absolute base coordinate and
//     supplies the overlap/containment geometry
//   - [Cell]: a single character with foreground and background colors
//   - [Span]: a single-row strip of cells, splittable by column offsets
//   - [Layer]: a set of placed spans on one z-plane, kept conflict-free
//   - [Canvas]: a z-ordered stack of positioned layers
//   - [View]: an immutable dense grid, the flattened output of a canvas
//   - [Window]: a FIFO queue of positioned views awaiting flattening
//   - [Frame]: the dense grid produced by flattening a window
//   - [PaintCommand]: a maximal run of non-empty cells at an absolute position
//
// Data flows one way: spans are pushed into layers, layers into a canvas,
// the canvas flattens to a view, views queue into a window, the window
// flattens to a frame, and [PaintCommands] run-length-encodes the frame.
//
// # Conflict Resolution
//
// A layer never holds two spans that occupy the same cell. Each insertion
// policy resolves collisions differently:
//
//   - [Layer.PushWrite]: the new span always wins; existing spans are split
//     around it
//   - [Layer.PushFixed]: existing spans are authoritative; the new span is
//     clipped to the gaps
//   - [Layer.PushOnlyValid]: the new span is rejected outright if it
//     collides with anything
//
// # Rendering
//
// Paint commands are device-independent. Two consumers ship with the
// package: [ScreenRenderer] draws onto a tcell.Screen, and [ANSIWriter]
// serializes commands as cursor-position and SGR escape sequences to any
// io.Writer.
//
// # Thread Safety
//
// No type performs internal locking. Every value is owned by exactly one
// caller at a time; callers that share values across goroutines must
// serialize access themselves.
package termgrid
