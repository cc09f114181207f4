package block

import (
	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// Block is a panel-sheet hub.
type Block struct {
	Center geom.Point
	Hub    pattern.Hub
	// Mask selects the drawn branches. A nil mask draws every direction.
	Mask   pattern.Mask
	Style  branch.Style
	Params pattern.Params
}

// part is the geometry of one direction: an optional branch and the strut.
type part struct {
	branch *branch.Branch
	strut  []sink.Primitive
}

// Draw appends the block to s. Each branch is flushed as it is drawn, and
// each strut right after its branch.
func (b Block) Draw(s sink.Sink) error {
	parts, err := b.plan()
	if err != nil {
		return err
	}
	for _, pt := range parts {
		if pt.branch != nil {
			if err := pt.branch.Draw(s); err != nil {
				return err
			}
		}
		if len(pt.strut) == 0 {
			continue
		}
		for _, p := range pt.strut {
			s.Append(p)
		}
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Primitives returns the block geometry in drawing order.
func (b Block) Primitives() ([]sink.Primitive, error) {
	rec := sink.NewRecorder()
	if err := b.Draw(rec); err != nil {
		return nil, err
	}
	return rec.Primitives(), nil
}

func (b Block) plan() ([]part, error) {
	mask, err := resolveMask(b.Mask, b.Hub)
	if err != nil {
		return nil, err
	}
	dirs := pattern.Directions(b.Hub, b.Params.Angle)
	parts := make([]part, len(dirs))
	for i, d := range dirs {
		pos := geom.At(b.Center, b.Params.Radius, d.Angle)
		if mask[i] {
			br, err := branch.New(pos, d.Angle, b.Params.Dims(b.Hub, d.Role), b.Params, b.Style)
			if err != nil {
				return nil, err
			}
			parts[i].branch = br
		}
		if b.Style == branch.Cut {
			strut, err := Strut(b.Center, pos, d.Angle, b.Params)
			if err != nil {
				return nil, err
			}
			parts[i].strut = strut
		}
	}
	return parts, nil
}

// Strut returns the hub support strut of the branch starting at pos along
// angle: two ticks from the panel_gap/2 offsets toward center, radius/2
// long, and the segment joining their inner ends.
func Strut(center, pos geom.Point, angle float64, p pattern.Params) ([]sink.Primitive, error) {
	e1 := geom.At(pos, p.PanelGap/2, angle-90)
	s1, err := tick(center, e1, p.Radius/2)
	if err != nil {
		return nil, err
	}
	e2 := geom.At(pos, p.PanelGap/2, angle+90)
	s2, err := tick(center, e2, p.Radius/2)
	if err != nil {
		return nil, err
	}
	return []sink.Primitive{
		sink.Line(e1, s1),
		sink.Line(e2, s2),
		sink.Line(s1, s2),
	}, nil
}

func tick(center, from geom.Point, length float64) (geom.Point, error) {
	dir, err := geom.Normalize(geom.Sub(center, from))
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Add(from, geom.Scale(dir, length)), nil
}

func resolveMask(m pattern.Mask, hub pattern.Hub) (pattern.Mask, error) {
	if m == nil {
		return pattern.AllActive(hub.Count()), nil
	}
	if err := m.Check(hub); err != nil {
		return nil, err
	}
	return m, nil
}
