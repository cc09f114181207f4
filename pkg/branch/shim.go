package branch

import (
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Tab is the outward outline of one branch on the shim sheet: a lead-in
// along the axis, a margin-wide notch of full shim width, and a lead-out
// back to the hub. It is symmetric about the branch axis.
type Tab struct {
	Origin geom.Point
	Angle  float64
	Dims   pattern.Dims

	width  float64 // beam_width / ratio
	base   float64 // lateral offset of the start and end points
	step   float64 // (beam_width − panel_gap) / 2
	margin float64
	ext    float64
}

// NewTab returns the shim tab of the branch at origin along angle.
func NewTab(origin geom.Point, angle float64, dims pattern.Dims, p pattern.Params) (*Tab, error) {
	ext := dims.ShimExtremity(p.BeamLength, p.Margin)
	if ext < 0 {
		return nil, errors.New(errors.ErrCodeInfeasibleBranch,
			"shim branch of length %.4g leaves no lead-in (extremity %.4g)", dims.Length, ext)
	}
	width := p.ShimWidth()
	return &Tab{
		Origin: origin,
		Angle:  angle,
		Dims:   dims,
		width:  width,
		base:   (width - p.BeamWidth + p.PanelGap) / 2,
		step:   (p.BeamWidth - p.PanelGap) / 2,
		margin: p.Margin,
		ext:    ext,
	}, nil
}

// Start is the first outline point, on the right of the axis.
func (t *Tab) Start() geom.Point {
	return geom.At(t.Origin, t.base, t.Angle-90)
}

// End is the last outline point, on the left of the axis.
func (t *Tab) End() geom.Point {
	return geom.At(t.Origin, t.base, t.Angle+90)
}

// Extremity returns the lead-in length before the notch.
func (t *Tab) Extremity() float64 {
	return t.ext
}

// Outline returns the 8 outline points from Start to End.
func (t *Tab) Outline() []geom.Point {
	a := t.Angle
	pts := make([]geom.Point, 8)
	pts[0] = t.Start()
	pts[1] = geom.At(pts[0], t.ext, a)
	pts[2] = geom.At(pts[1], t.step, a-90)
	pts[3] = geom.At(pts[2], t.margin, a)
	pts[4] = geom.At(pts[3], t.width, a+90)
	pts[5] = geom.At(pts[4], t.margin, a+180)
	pts[6] = geom.At(pts[5], t.step, a-90)
	pts[7] = geom.At(pts[6], t.ext, a-180)
	return pts
}

// Primitive returns the open tab polyline.
func (t *Tab) Primitive() sink.Primitive {
	return sink.Polyline(t.Outline()...)
}

// Separator is the H-shaped clip inserted between two consecutive beams.
type Separator struct {
	Center geom.Point
	Angle  float64

	gap    float64
	margin float64
	width  float64
	step   float64
}

// NewSeparator returns the clip centred on center for a branch along angle
// whose beams are gap apart.
func NewSeparator(center geom.Point, angle, gap float64, p pattern.Params) Separator {
	return Separator{
		Center: center,
		Angle:  angle,
		gap:    gap,
		margin: p.Margin,
		width:  p.ShimWidth(),
		step:   (p.BeamWidth - p.PanelGap) / 2,
	}
}

// Outline returns the 12 clip points; the outline is closed.
func (s Separator) Outline() []geom.Point {
	a := s.Angle
	inner := s.gap - s.margin
	start := geom.At(s.Center, (s.gap+s.margin)/2, a+180)

	pts := make([]geom.Point, 12)
	pts[0] = geom.At(start, s.width/2, a+90)
	pts[1] = geom.At(pts[0], s.margin, a)
	pts[2] = geom.At(pts[1], s.step, a-90)
	pts[3] = geom.At(pts[2], inner, a)
	pts[4] = geom.At(pts[3], s.step, a+90)
	pts[5] = geom.At(pts[4], s.margin, a)
	pts[6] = geom.At(pts[5], s.width, a-90)
	pts[7] = geom.At(pts[6], s.margin, a+180)
	pts[8] = geom.At(pts[7], s.step, a+90)
	pts[9] = geom.At(pts[8], inner, a+180)
	pts[10] = geom.At(pts[9], s.step, a-90)
	pts[11] = geom.At(pts[10], s.margin, a+180)
	return pts
}

// Primitive returns the closed clip polyline.
func (s Separator) Primitive() sink.Primitive {
	return sink.ClosedPolyline(s.Outline()...)
}

// SeparatorCenters returns the beam-gap centrelines of the branch at origin
// along angle: one per gap, so dims.BeamCount−1 points.
func SeparatorCenters(origin geom.Point, angle float64, dims pattern.Dims, beamLength float64) []geom.Point {
	if dims.BeamCount < 2 {
		return nil
	}
	offset := dims.Extremity(beamLength) + beamLength + dims.BeamGap/2
	centers := make([]geom.Point, dims.BeamCount-1)
	for k := range centers {
		centers[k] = geom.At(origin, offset+float64(k)*(dims.BeamGap+beamLength), angle)
	}
	return centers
}
