package tessellation

import (
	"math"

	"github.com/matzehuels/foldcut/pkg/block"
	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Grid is a rows × cols tessellation.
type Grid struct {
	Rows, Cols int
	Origin     geom.Point
	Hub        pattern.Hub
	Style      branch.Style
	Params     pattern.Params
}

// Cells returns the number of grid cells.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Validate checks the grid size and the panel-sheet parameters.
func (g Grid) Validate() error {
	if g.Rows < 0 || g.Cols < 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid size must be non-negative, got %dx%d", g.Rows, g.Cols)
	}
	return g.Params.Validate(g.Hub)
}

// ValidateShim checks the grid size and the shim-sheet parameters.
func (g Grid) ValidateShim() error {
	if err := g.Validate(); err != nil {
		return err
	}
	return g.Params.ValidateShim(g.Hub)
}

// columnStep is the distance between hubs of the same row.
func (g Grid) columnStep() float64 {
	return 2 * math.Cos(geom.Radians(g.Params.Angle)) * (g.Params.Length + 2*g.Params.Radius)
}

// Center returns the hub center of cell (i, j).
func (g Grid) Center(i, j int) geom.Point {
	p := g.Params
	d := g.columnStep()
	x := g.Origin.X + float64(j)*d
	if i%2 == 0 {
		x += (2*p.Radius + p.Length) * math.Cos(geom.Radians(p.Angle))
	}
	y := geom.At(g.Origin, float64(i)*(2*p.Radius+p.Length), -p.Angle).Y
	return geom.Pt(x, y)
}

// Mask returns a fresh activation mask for cell (i, j).
func (g Grid) Mask(i, j int) pattern.Mask {
	dirs := pattern.Directions(g.Hub, g.Params.Angle)
	m := pattern.AllActive(len(dirs))
	for k, d := range dirs {
		ni, nj, ok := g.upNeighbor(d, i, j)
		if ok && g.contains(ni, nj) {
			m[k] = false
		}
	}
	return m
}

// upNeighbor returns the cell reached by an upward or leftward direction.
func (g Grid) upNeighbor(d pattern.Direction, i, j int) (int, int, bool) {
	theta := g.Params.Angle
	even := i%2 == 0
	switch d.Angle {
	case 180:
		return i, j - 1, true
	case 180 - theta:
		if even {
			return i - 1, j, true
		}
		return i - 1, j - 1, true
	case theta:
		if even {
			return i - 1, j + 1, true
		}
		return i - 1, j, true
	case 90:
		return i - 2, j, true
	}
	return 0, 0, false
}

func (g Grid) contains(i, j int) bool {
	return i >= 0 && i < g.Rows && j >= 0 && j < g.Cols
}

// Draw validates the grid and appends every block to s in row-major order.
func (g Grid) Draw(s sink.Sink) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			b := block.Block{
				Center: g.Center(i, j),
				Hub:    g.Hub,
				Mask:   g.Mask(i, j),
				Style:  g.Style,
				Params: g.Params,
			}
			if err := b.Draw(s); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "cell (%d, %d)", i, j)
			}
		}
	}
	return nil
}
