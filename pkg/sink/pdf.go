package sink

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// ptPerMM converts millimetres to PDF points.
const ptPerMM = 72 / 25.4

// PDF renders a single-page vector preview at 1:1 scale.
type PDF struct {
	// Margin is the blank border in millimetres (default 5).
	Margin float64
	// LineWidth is the stroke width in millimetres (default 0.1).
	LineWidth float64
}

// Format implements Encoder.
func (PDF) Format() string { return FormatPDF }

// Write implements Encoder.
func (e PDF) Write(path string, prims []Primitive) error {
	margin, lw := e.Margin, e.LineWidth
	if margin <= 0 {
		margin = 5
	}
	if lw <= 0 {
		lw = 0.1
	}

	b := Bounds(prims)
	paper := &pdf.Rectangle{
		URx: (b.Width() + 2*margin) * ptPerMM,
		URy: (b.Height() + 2*margin) * ptPerMM,
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Model space is y-up like PDF user space: scale to points and move the
	// bounding box into the margin.
	page.Transform(matrix.Matrix{ptPerMM, 0, 0, ptPerMM, (margin - b.Min.X) * ptPerMM, (margin - b.Min.Y) * ptPerMM})
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(lw)

	for _, p := range prims {
		page.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			page.LineTo(pt.X, pt.Y)
		}
		if p.Closed {
			page.ClosePath()
		}
	}
	if len(prims) > 0 {
		page.Stroke()
	}
	return page.Close()
}
