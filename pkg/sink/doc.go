// Package sink collects drawing primitives and persists them as CAD and
// preview files.
//
// # Primitives
//
// Generators emit two kinds of [Primitive]: a [Line] between two points and a
// [Polyline] through two or more points, optionally closed. Closed polylines
// do not repeat their first point.
//
// # Sinks
//
// Every generator receives a [Sink] explicitly and appends to it in a fixed
// order: row-major over the grid, then per-block direction order, then
// per-branch primitive order. One sink is shared by all generators of a run
// and lives for the whole run. Generators call [Sink.Flush] after each
// branch; implementations must treat repeated flushes as harmless.
//
//   - [Recorder] keeps primitives in memory. Its Flush only counts calls.
//   - [File] persists all primitives recorded so far to a named artifact with
//     an [Encoder]. Flushing again rewrites the same content.
//
// # Encoders
//
//   - [DXF]: LINE and LWPOLYLINE entities on a single layer, for laser cutters
//     and CAD tools (github.com/yofu/dxf)
//   - [SVG]: a y-up preview in millimetres
//   - [PDF]: a single-page vector preview (seehuhn.de/go/pdf)
//   - [JSON]: the raw primitive list for external tooling
//
// Basic usage:
//
//	f := sink.NewFile("sheet.dxf", sink.DXF{})
//	f.Append(sink.Line(a, b))
//	if err := f.Flush(); err != nil {
//	    return err
//	}
package sink
