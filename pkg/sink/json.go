package sink

import (
	"encoding/json"
	"os"
)

// JSON encodes primitives as an indented JSON document.
type JSON struct{}

type jsonOutput struct {
	Bounds     jsonBounds      `json:"bounds"`
	Lines      int             `json:"lines"`
	Polylines  int             `json:"polylines"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonBounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

type jsonPrimitive struct {
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points"`
	Closed bool         `json:"closed,omitempty"`
}

// Format implements Encoder.
func (JSON) Format() string { return FormatJSON }

// Write implements Encoder.
func (e JSON) Write(path string, prims []Primitive) error {
	data, err := e.Render(prims)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Render returns the JSON document for prims.
func (JSON) Render(prims []Primitive) ([]byte, error) {
	b := Bounds(prims)
	lines, polylines := Count(prims)
	out := jsonOutput{
		Bounds:     jsonBounds{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y},
		Lines:      lines,
		Polylines:  polylines,
		Primitives: make([]jsonPrimitive, len(prims)),
	}
	for i, p := range prims {
		pts := make([][2]float64, len(p.Points))
		for j, pt := range p.Points {
			pts[j] = [2]float64{pt.X, pt.Y}
		}
		out.Primitives[i] = jsonPrimitive{Kind: p.Kind.String(), Points: pts, Closed: p.Closed}
	}
	return json.MarshalIndent(out, "", "  ")
}
