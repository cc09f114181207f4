package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSVGRender(t *testing.T) {
	out := string(NewSVG(WithMargin(1), WithStroke("black")).Render(samplePrimitives()))

	for _, want := range []string{
		`viewBox="-1.0000 -7.0000 12.0000 8.0000"`,
		`<line x1="0.0000" y1="0.0000" x2="10.0000" y2="0.0000"/>`,
		`<polyline points="0.0000,-1.0000 2.0000,-1.0000 2.0000,-3.0000"/>`,
		`<polygon points="5.0000,-5.0000`,
		`stroke="black"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("SVG not terminated")
	}
}

func TestSVGDeterministic(t *testing.T) {
	a := NewSVG().Render(samplePrimitives())
	b := NewSVG().Render(samplePrimitives())
	if !bytes.Equal(a, b) {
		t.Error("SVG output differs between identical renders")
	}
}

func TestJSONRender(t *testing.T) {
	data, err := JSON{}.Render(samplePrimitives())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Lines != 1 || out.Polylines != 2 {
		t.Errorf("Lines, Polylines = %d, %d, want 1, 2", out.Lines, out.Polylines)
	}
	if len(out.Primitives) != 3 {
		t.Fatalf("len(Primitives) = %d, want 3", len(out.Primitives))
	}
	if !out.Primitives[2].Closed || out.Primitives[2].Kind != "polyline" {
		t.Errorf("Primitives[2] = %+v, want closed polyline", out.Primitives[2])
	}
	if out.Bounds.MaxX != 10 || out.Bounds.MaxY != 6 {
		t.Errorf("Bounds = %+v, want max (10, 6)", out.Bounds)
	}
}

func TestEncodersWriteFiles(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		enc    Encoder
		marker string
	}{
		{DXF{}, "LWPOLYLINE"},
		{NewSVG(), "<svg"},
		{PDF{}, "%PDF"},
		{JSON{}, `"primitives"`},
	}

	for _, tt := range tests {
		t.Run(tt.enc.Format(), func(t *testing.T) {
			path := filepath.Join(dir, "sheet."+tt.enc.Format())
			if err := tt.enc.Write(path, samplePrimitives()); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Contains(data, []byte(tt.marker)) {
				t.Errorf("%s output missing %q", tt.enc.Format(), tt.marker)
			}
		})
	}
}

func TestDXFLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layer.dxf")
	if err := (DXF{Layer: "SCORE"}).Write(path, samplePrimitives()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.Contains(data, []byte("SCORE")) {
		t.Error("DXF output missing layer name")
	}
}
