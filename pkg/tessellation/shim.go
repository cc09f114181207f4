package tessellation

import (
	"github.com/matzehuels/foldcut/pkg/block"
	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/errors"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// ShimCenters returns the shim hub centers, row by row. Row 0 starts at the
// panel center of cell (0, 0); each later row starts where the lower
// diagonal of the previous row's first hub ends, one hub radius further.
// Within a row, hubs are one spine plus two radii apart.
func (g Grid) ShimCenters() ([][]geom.Point, error) {
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil, nil
	}
	p := g.Params
	spine := p.RoleLength(pattern.Spine)

	rows := make([][]geom.Point, g.Rows)
	ref := g.Center(0, 0)
	for i := range rows {
		if i > 0 {
			next, err := g.nextRowStart(ref, i)
			if err != nil {
				return nil, err
			}
			ref = next
		}
		row := make([]geom.Point, g.Cols)
		c := ref
		for j := range row {
			if j > 0 {
				c = geom.At(c, spine+2*p.Radius, 0)
			}
			row[j] = c
		}
		rows[i] = row
	}
	return rows, nil
}

// nextRowStart follows the terminal branch of the reference hub into row i:
// 180°+θ when entering an odd row, −θ when entering an even one.
func (g Grid) nextRowStart(ref geom.Point, i int) (geom.Point, error) {
	p := g.Params
	angle := -p.Angle
	if i%2 == 1 {
		angle = 180 + p.Angle
	}
	start := geom.At(ref, p.Radius, angle)
	br, err := branch.New(start, angle, p.Dims(g.Hub, pattern.Diagonal), p, branch.Cut)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.At(br.End(), p.Radius, angle), nil
}

// DrawShim validates the grid and appends every shim block to s in
// row-major order.
func (g Grid) DrawShim(s sink.Sink) error {
	if err := g.ValidateShim(); err != nil {
		return err
	}
	centers, err := g.ShimCenters()
	if err != nil {
		return err
	}
	for i, row := range centers {
		for j, c := range row {
			b := block.ShimBlock{
				Center: c,
				Hub:    g.Hub,
				Mask:   g.Mask(i, j),
				Params: g.Params,
			}
			if err := b.Draw(s); err != nil {
				return errors.Wrap(errors.GetCode(err), err, "shim cell (%d, %d)", i, j)
			}
		}
	}
	return nil
}
