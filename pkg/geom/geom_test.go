package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/foldcut/pkg/errors"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name     string
		origin   Point
		distance float64
		angle    float64
		want     Point
	}{
		{"east", Pt(0, 0), 2, 0, Pt(2, 0)},
		{"north", Pt(1, 1), 3, 90, Pt(1, 4)},
		{"west", Pt(0, 0), 1, 180, Pt(-1, 0)},
		{"negative angle", Pt(0, 0), 2, -90, Pt(0, -2)},
		{"negative distance reverses", Pt(0, 0), -2, 0, Pt(-2, 0)},
		{"sixty degrees", Pt(0, 0), 2, 60, Pt(1, math.Sqrt(3))},
		{"full turn", Pt(5, 5), 1, 360, Pt(6, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := At(tt.origin, tt.distance, tt.angle)
			if !AlmostEqual(got, tt.want) {
				t.Errorf("At(%v, %v, %v) = %v, want %v", tt.origin, tt.distance, tt.angle, got, tt.want)
			}
		})
	}
}

func TestVectorOps(t *testing.T) {
	a, b := Pt(1, 2), Pt(3, -1)

	if got := Add(a, b); !AlmostEqual(got, Pt(4, 1)) {
		t.Errorf("Add() = %v, want (4, 1)", got)
	}
	if got := Sub(a, b); !AlmostEqual(got, Pt(-2, 3)) {
		t.Errorf("Sub() = %v, want (-2, 3)", got)
	}
	if got := Scale(a, -2); !AlmostEqual(got, Pt(-2, -4)) {
		t.Errorf("Scale() = %v, want (-2, -4)", got)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(Pt(3, 4))
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if !AlmostEqual(got, Pt(0.6, 0.8)) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8)", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	_, err := Normalize(Pt(0, 0))
	if err == nil {
		t.Fatal("Normalize(0, 0) should fail")
	}
	if !errors.Is(err, errors.ErrCodeDegenerateGeometry) {
		t.Errorf("Normalize(0, 0) code = %v, want %v", errors.GetCode(err), errors.ErrCodeDegenerateGeometry)
	}
}

func TestBounds(t *testing.T) {
	r := Bounds(Pt(1, 2), Pt(-3, 5), Pt(0, -1))
	if !AlmostEqual(r.Min, Pt(-3, -1)) || !AlmostEqual(r.Max, Pt(1, 5)) {
		t.Errorf("Bounds() = %v, want (-3,-1)-(1,5)", r)
	}
	if r.Width() != 4 || r.Height() != 6 {
		t.Errorf("Bounds() size = %vx%v, want 4x6", r.Width(), r.Height())
	}

	if empty := Bounds(); empty != (Rect{}) {
		t.Errorf("Bounds() of nothing = %v, want zero rect", empty)
	}
}

func TestLateralOffset(t *testing.T) {
	origin := Pt(1, 1)
	for _, angle := range []float64{0, 40, 90, 135, 220} {
		left := At(At(origin, 5, angle), 0.6, angle+90)
		right := At(At(origin, 5, angle), 0.6, angle-90)
		if got := LateralOffset(origin, angle, left); math.Abs(got-0.6) > Epsilon {
			t.Errorf("LateralOffset(left, %v) = %v, want 0.6", angle, got)
		}
		if got := LateralOffset(origin, angle, right); math.Abs(got+0.6) > Epsilon {
			t.Errorf("LateralOffset(right, %v) = %v, want -0.6", angle, got)
		}
	}
}

func ExampleAt() {
	p := At(Pt(0, 0), 10, 90)
	fmt.Printf("(%.1f, %.1f)\n", p.X, p.Y)
	// Output: (0.0, 10.0)
}
