package sink

import (
	"github.com/yofu/dxf"
)

// DefaultLayer is the DXF layer primitives are drawn on.
const DefaultLayer = "CUT"

// DXF encodes primitives as LINE and LWPOLYLINE entities.
type DXF struct {
	// Layer overrides DefaultLayer.
	Layer string
}

// Format implements Encoder.
func (DXF) Format() string { return FormatDXF }

// Write implements Encoder.
func (e DXF) Write(path string, prims []Primitive) error {
	layer := e.Layer
	if layer == "" {
		layer = DefaultLayer
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}

	for _, p := range prims {
		switch p.Kind {
		case KindLine:
			a, b := p.Points[0], p.Points[1]
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return err
			}
		case KindPolyline:
			verts := make([][]float64, len(p.Points))
			for i, pt := range p.Points {
				verts[i] = []float64{pt.X, pt.Y}
			}
			if _, err := d.LwPolyline(p.Closed, verts...); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}
