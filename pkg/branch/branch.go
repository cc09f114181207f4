package branch

import (
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Style selects how a branch is rendered.
type Style int

const (
	// Cut draws extremity lines and U-shaped beam slots.
	Cut Style = iota
	// Tape draws closed full-width rectangular slots only.
	Tape
)

func (s Style) String() string {
	if s == Tape {
		return "tape"
	}
	return "cut"
}

// Branch is one straight connector starting at Start along Angle.
type Branch struct {
	Start geom.Point
	Angle float64
	Dims  pattern.Dims
	Style Style

	panelGap   float64
	beamLength float64
	beamWidth  float64
	extremity  float64
}

// New returns a branch from start along angle. It fails when the beams do
// not fit in dims.Length.
func New(start geom.Point, angle float64, dims pattern.Dims, p pattern.Params, style Style) (*Branch, error) {
	if dims.BeamCount < 1 {
		return nil, errors.New(errors.ErrCodeInvalidBeamCount, "beam_count must be >= 1, got %d", dims.BeamCount)
	}
	ext := dims.Extremity(p.BeamLength)
	if ext < 0 {
		return nil, errors.New(errors.ErrCodeInfeasibleBranch,
			"branch of length %.4g cannot hold %d beams (extremity %.4g)", dims.Length, dims.BeamCount, ext)
	}
	return &Branch{
		Start:      start,
		Angle:      angle,
		Dims:       dims,
		Style:      style,
		panelGap:   p.PanelGap,
		beamLength: p.BeamLength,
		beamWidth:  p.BeamWidth,
		extremity:  ext,
	}, nil
}

// End returns Start + Length along Angle.
func (b *Branch) End() geom.Point {
	return geom.At(b.Start, b.Dims.Length, b.Angle)
}

// Extremity returns the straight lead-in length at each end.
func (b *Branch) Extremity() float64 {
	return b.extremity
}

// Primitives returns the branch geometry in drawing order.
func (b *Branch) Primitives() []sink.Primitive {
	if b.Style == Tape {
		return b.tape()
	}
	return b.cut()
}

// Draw appends the branch to s and flushes it.
func (b *Branch) Draw(s sink.Sink) error {
	for _, p := range b.Primitives() {
		s.Append(p)
	}
	return s.Flush()
}

func (b *Branch) cut() []sink.Primitive {
	n := b.Dims.BeamCount
	prims := make([]sink.Primitive, 0, 4+2*n)
	end := b.End()
	half := b.panelGap / 2
	arm := (b.beamWidth - b.panelGap) / 2

	for _, side := range [2]float64{b.Angle + 90, b.Angle - 90} {
		s := geom.At(b.Start, half, side)
		e := geom.At(end, half, side)
		prims = append(prims,
			sink.Line(s, geom.At(s, b.extremity, b.Angle)),
			sink.Line(e, geom.At(e, b.extremity, b.Angle-180)),
		)

		cur := geom.At(s, b.extremity, b.Angle)
		for k := 0; k < n; k++ {
			p1 := geom.At(cur, arm, side)
			p2 := geom.At(p1, b.beamLength, b.Angle)
			p3 := geom.At(p2, arm, side+180)
			if k == n-1 {
				prims = append(prims, sink.Polyline(cur, p1, p2, p3))
				break
			}
			p4 := geom.At(p3, b.Dims.BeamGap, b.Angle)
			prims = append(prims, sink.Polyline(cur, p1, p2, p3, p4))
			cur = p4
		}
	}
	return prims
}

func (b *Branch) tape() []sink.Primitive {
	n := b.Dims.BeamCount
	prims := make([]sink.Primitive, 0, n)
	cur := geom.At(geom.At(b.Start, b.beamWidth/2, b.Angle-90), b.extremity, b.Angle)
	for k := 0; k < n; k++ {
		p1 := geom.At(cur, b.beamWidth, b.Angle+90)
		p2 := geom.At(p1, b.beamLength, b.Angle)
		p3 := geom.At(p2, b.beamWidth, b.Angle-90)
		prims = append(prims, sink.ClosedPolyline(cur, p1, p2, p3))
		cur = geom.At(cur, b.beamLength+b.Dims.BeamGap, b.Angle)
	}
	return prims
}
