package block

import (
	"math"
	"testing"

	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

const eps = 1e-9

// reference is the isolated-block configuration: r=2, L=25, θ=60, two beams.
func reference() pattern.Params {
	p := pattern.Defaults()
	p.Radius = 2
	p.Length = 25
	p.Angle = 60
	p.BeamCount = 2
	p.PanelGap = 1.2
	p.BeamGap = 2.33
	p.BeamLength = 6.33
	p.BeamWidth = 4.83
	return p
}

func TestBlockPrimitiveCount(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  int
	}{
		{
			name:  "isolated hexagonal block",
			block: Block{Hub: pattern.Hexagonal, Params: reference()},
			want:  6*(4+2*2) + 6*3,
		},
		{
			name:  "one branch masked, struts stay",
			block: Block{Hub: pattern.Hexagonal, Mask: pattern.Mask{true, true, false, true, true, true}, Params: reference()},
			want:  5*(4+2*2) + 6*3,
		},
		{
			name:  "nothing active",
			block: Block{Hub: pattern.Hexagonal, Mask: make(pattern.Mask, 6), Params: reference()},
			want:  6 * 3,
		},
		{
			name:  "tape style has no struts",
			block: Block{Hub: pattern.Hexagonal, Style: branch.Tape, Params: reference()},
			want:  6 * 2,
		},
		{
			name:  "octagonal doubles perpendicular beams",
			block: Block{Hub: pattern.Octagonal, Params: pattern.Defaults()},
			want:  6*(4+2*2) + 2*(4+2*4) + 8*3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prims, err := tt.block.Primitives()
			if err != nil {
				t.Fatalf("Primitives() error: %v", err)
			}
			if len(prims) != tt.want {
				t.Errorf("len(Primitives()) = %d, want %d", len(prims), tt.want)
			}
		})
	}
}

func TestBlockEndToEnd(t *testing.T) {
	rec := sink.NewRecorder()
	b := Block{Center: geom.Pt(0, 0), Hub: pattern.Hexagonal, Params: reference()}
	if err := b.Draw(rec); err != nil {
		t.Fatalf("Draw() error: %v", err)
	}

	lines, polylines := sink.Count(rec.Primitives())
	if lines != 6*4+6*3 || polylines != 6*4 {
		t.Errorf("lines, polylines = %d, %d, want 42, 24", lines, polylines)
	}
	if rec.Len() != 66 {
		t.Errorf("Len() = %d, want 66", rec.Len())
	}
	// One flush per branch and one per strut.
	if rec.Flushes() != 12 {
		t.Errorf("Flushes() = %d, want 12", rec.Flushes())
	}
}

func TestStrutMeetsExtremityLines(t *testing.T) {
	p := reference()
	center := geom.Pt(4, -3)
	b := Block{Center: center, Hub: pattern.Hexagonal, Params: p}
	prims, err := b.Primitives()
	if err != nil {
		t.Fatalf("Primitives() error: %v", err)
	}

	const perDir = 8 + 3
	for i, d := range pattern.Directions(pattern.Hexagonal, p.Angle) {
		base := i * perDir
		leftStart := prims[base].Points[0]
		rightStart := prims[base+4].Points[0]
		strut := prims[base+8 : base+11]

		pos := geom.At(center, p.Radius, d.Angle)
		for _, pt := range []geom.Point{leftStart, rightStart} {
			if got := math.Abs(geom.LateralOffset(pos, d.Angle, pt)); math.Abs(got-p.PanelGap/2) > eps {
				t.Errorf("direction %d: extremity offset = %v, want %v", i, got, p.PanelGap/2)
			}
		}

		if !geom.AlmostEqual(strut[0].Points[0], rightStart) {
			t.Errorf("direction %d: strut tick starts at %v, want %v", i, strut[0].Points[0], rightStart)
		}
		if !geom.AlmostEqual(strut[1].Points[0], leftStart) {
			t.Errorf("direction %d: strut tick starts at %v, want %v", i, strut[1].Points[0], leftStart)
		}
		for k := 0; k < 2; k++ {
			tick := strut[k].Points[0].DistanceFrom(strut[k].Points[1])
			if math.Abs(tick-p.Radius/2) > eps {
				t.Errorf("direction %d: tick %d length = %v, want %v", i, k, tick, p.Radius/2)
			}
			// Ticks point at the hub center.
			before := strut[k].Points[0].DistanceFrom(center)
			after := strut[k].Points[1].DistanceFrom(center)
			if math.Abs(before-after-p.Radius/2) > eps {
				t.Errorf("direction %d: tick %d is not radial", i, k)
			}
		}
		if !geom.AlmostEqual(strut[2].Points[0], strut[0].Points[1]) || !geom.AlmostEqual(strut[2].Points[1], strut[1].Points[1]) {
			t.Errorf("direction %d: connector does not join the tick ends", i)
		}
	}
}

func TestBlockValidation(t *testing.T) {
	infeasible := reference()
	infeasible.Length = 10

	tests := []struct {
		name  string
		block Block
		code  errors.Code
	}{
		{"short mask", Block{Hub: pattern.Hexagonal, Mask: pattern.AllActive(5), Params: reference()}, errors.ErrCodeMaskLength},
		{"hex mask on oct hub", Block{Hub: pattern.Octagonal, Mask: pattern.AllActive(6), Params: reference()}, errors.ErrCodeMaskLength},
		{"infeasible branch", Block{Hub: pattern.Hexagonal, Params: infeasible}, errors.ErrCodeInfeasibleBranch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := sink.NewRecorder()
			err := tt.block.Draw(rec)
			if !errors.Is(err, tt.code) {
				t.Errorf("Draw() code = %v, want %v", errors.GetCode(err), tt.code)
			}
			if rec.Len() != 0 || rec.Flushes() != 0 {
				t.Errorf("Draw() emitted %d primitives before failing", rec.Len())
			}
		})
	}
}

func TestStrutDegenerate(t *testing.T) {
	p := reference()
	p.PanelGap = 0
	_, err := Strut(geom.Pt(0, 0), geom.Pt(0, 0), 0, p)
	if !errors.Is(err, errors.ErrCodeDegenerateGeometry) {
		t.Errorf("Strut() code = %v, want %v", errors.GetCode(err), errors.ErrCodeDegenerateGeometry)
	}
}
