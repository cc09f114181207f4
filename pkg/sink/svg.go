package sink

import (
	"bytes"
	"fmt"
	"os"
)

// SVGOption configures the SVG encoder.
type SVGOption func(*SVG)

// SVG renders a y-up preview with millimetre units.
type SVG struct {
	margin      float64
	strokeWidth float64
	stroke      string
}

// WithMargin sets the blank border around the drawing, in millimetres.
func WithMargin(mm float64) SVGOption { return func(s *SVG) { s.margin = mm } }

// WithStrokeWidth sets the line width, in millimetres.
func WithStrokeWidth(mm float64) SVGOption { return func(s *SVG) { s.strokeWidth = mm } }

// WithStroke sets the line color.
func WithStroke(color string) SVGOption { return func(s *SVG) { s.stroke = color } }

// NewSVG returns an SVG encoder.
func NewSVG(opts ...SVGOption) SVG {
	s := SVG{margin: 5, strokeWidth: 0.1, stroke: "red"}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Format implements Encoder.
func (SVG) Format() string { return FormatSVG }

// Write implements Encoder.
func (s SVG) Write(path string, prims []Primitive) error {
	return os.WriteFile(path, s.Render(prims), 0o644)
}

// Render returns the SVG document for prims.
func (s SVG) Render(prims []Primitive) []byte {
	b := Bounds(prims)
	minX, minY := b.Min.X-s.margin, flipY(b.Max.Y)-s.margin
	w, h := b.Width()+2*s.margin, b.Height()+2*s.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0"?>`+"\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="%.4f %.4f %.4f %.4f" width="%.4fmm" height="%.4fmm">`+"\n",
		minX, minY, w, h, w, h)
	fmt.Fprintf(&buf, `<g fill="none" stroke="%s" stroke-width="%.4f" stroke-linecap="round" stroke-linejoin="round">`+"\n",
		s.stroke, s.strokeWidth)

	for _, p := range prims {
		switch {
		case p.Kind == KindLine:
			a, c := p.Points[0], p.Points[1]
			fmt.Fprintf(&buf, `<line x1="%.4f" y1="%.4f" x2="%.4f" y2="%.4f"/>`+"\n", a.X, flipY(a.Y), c.X, flipY(c.Y))
		case p.Closed:
			fmt.Fprintf(&buf, `<polygon points="%s"/>`+"\n", svgPoints(p))
		default:
			fmt.Fprintf(&buf, `<polyline points="%s"/>`+"\n", svgPoints(p))
		}
	}

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

func svgPoints(p Primitive) string {
	var buf bytes.Buffer
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.4f,%.4f", pt.X, flipY(pt.Y))
	}
	return buf.String()
}

// flipY maps model y-up to SVG y-down without producing negative zero.
func flipY(y float64) float64 {
	return 0 - y
}
