// Package sketch is a stroke-smoothing and layer-compositing engine for
// interactive freehand drawing.
//
// # Overview
//
// A [Canvas] turns a stream of pointer events into smooth strokes, paints
// them onto the active layer of an ordered layer stack and records every
// mutation in an undo/redo history. The host owns the window, the event loop
// and the user interface; the canvas owns pixels, layers and history.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	c := sketch.NewCanvas(512, 512,
//	    sketch.WithBrush(sketch.Brush{Color: sketch.Black, Width: 4, Opacity: 1}),
//	)
//
//	c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseBegin, Pointers: []sketch.Pointer{{Pos: sketch.Pt(10, 10)}}})
//	c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseMove, Pointers: []sketch.Pointer{{Pos: sketch.Pt(60, 40)}}})
//	c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseEnd, Pointers: []sketch.Pointer{{Pos: sketch.Pt(60, 40)}}})
//
//	_ = c.Snapshot().SavePNG("sketch.png")
//
// # Strokes
//
// Freehand input is smoothed with quadratic midpoint curves: every move
// event produces one segment from the midpoint of the two previous samples,
// controlled by the previous sample, to the midpoint of the previous and the
// current sample. Line, ellipse and rectangle modes rebuild a single shape
// from the first and the current sample on every move.
//
// Only the dirty rectangle of each segment is recomposited, from a copy of
// the layer taken when the stroke began, so a stroke never blends onto
// itself.
//
// # Layers
//
// Layers are addressed by index for editing and identified by a stable
// [LayerID]. Exactly one layer is active at any time and receives strokes.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. The host serializes input events
// and editing calls.
package sketch
