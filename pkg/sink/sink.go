package sink

import (
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
)

// Kind distinguishes the primitive types.
type Kind int

const (
	KindLine Kind = iota
	KindPolyline
)

func (k Kind) String() string {
	if k == KindPolyline {
		return "polyline"
	}
	return "line"
}

// Primitive is one drawing element.
type Primitive struct {
	Kind   Kind
	Points []geom.Point
	Closed bool
}

// Line returns a line primitive from a to b.
func Line(a, b geom.Point) Primitive {
	return Primitive{Kind: KindLine, Points: []geom.Point{a, b}}
}

// Polyline returns an open polyline through pts.
func Polyline(pts ...geom.Point) Primitive {
	return Primitive{Kind: KindPolyline, Points: pts}
}

// ClosedPolyline returns a polyline through pts that returns to pts[0].
func ClosedPolyline(pts ...geom.Point) Primitive {
	return Primitive{Kind: KindPolyline, Points: pts, Closed: true}
}

// Validate checks the point count of p.
func (p Primitive) Validate() error {
	switch p.Kind {
	case KindLine:
		if len(p.Points) != 2 {
			return errors.New(errors.ErrCodeInvalidPrimitive, "line needs 2 points, got %d", len(p.Points))
		}
	case KindPolyline:
		if len(p.Points) < 2 {
			return errors.New(errors.ErrCodeInvalidPrimitive, "polyline needs at least 2 points, got %d", len(p.Points))
		}
	default:
		return errors.New(errors.ErrCodeInvalidPrimitive, "unknown primitive kind %d", p.Kind)
	}
	return nil
}

// Sink receives primitives from the generators.
type Sink interface {
	// Append adds p to the end of the drawing.
	Append(p Primitive)
	// Flush persists everything appended so far. It may be called any
	// number of times.
	Flush() error
}

// Recorder is an in-memory Sink.
type Recorder struct {
	prims   []Primitive
	flushes int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append implements Sink.
func (r *Recorder) Append(p Primitive) {
	r.prims = append(r.prims, p)
}

// Flush implements Sink.
func (r *Recorder) Flush() error {
	r.flushes++
	return nil
}

// Primitives returns the recorded primitives in append order.
func (r *Recorder) Primitives() []Primitive {
	return r.prims
}

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int {
	return len(r.prims)
}

// Flushes returns how many times Flush was called.
func (r *Recorder) Flushes() int {
	return r.flushes
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() {
	r.prims = nil
	r.flushes = 0
}

// Bounds returns the bounding box of every point in prims.
func Bounds(prims []Primitive) geom.Rect {
	var pts []geom.Point
	for _, p := range prims {
		pts = append(pts, p.Points...)
	}
	return geom.Bounds(pts...)
}

// Count tallies prims by kind.
func Count(prims []Primitive) (lines, polylines int) {
	for _, p := range prims {
		if p.Kind == KindPolyline {
			polylines++
		} else {
			lines++
		}
	}
	return lines, polylines
}
