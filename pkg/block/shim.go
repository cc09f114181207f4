package block

import (
	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
)

// CenterShim is the closed hub outline of the shim sheet.
type CenterShim struct {
	Center geom.Point
	Hub    pattern.Hub
	// Mask selects the directions that get a tab. A nil mask uses all.
	Mask   pattern.Mask
	Params pattern.Params
}

// Tabs returns the tabs of the active directions in direction order.
func (c CenterShim) Tabs() ([]*branch.Tab, error) {
	mask, err := resolveMask(c.Mask, c.Hub)
	if err != nil {
		return nil, err
	}
	var tabs []*branch.Tab
	for i, d := range pattern.Directions(c.Hub, c.Params.Angle) {
		if !mask[i] {
			continue
		}
		origin := geom.At(c.Center, c.Params.Radius, d.Angle)
		tab, err := branch.NewTab(origin, d.Angle, c.Params.Dims(c.Hub, d.Role), c.Params)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// Draw appends the outline to s: for every tab a join line from the
// previous tab, then the tab itself, and finally the closing line back to
// the first tab.
func (c CenterShim) Draw(s sink.Sink) error {
	tabs, err := c.Tabs()
	if err != nil {
		return err
	}
	return drawOutline(s, tabs)
}

func drawOutline(s sink.Sink, tabs []*branch.Tab) error {
	if len(tabs) == 0 {
		return nil
	}
	for i, tab := range tabs {
		if i > 0 {
			s.Append(sink.Line(tabs[i-1].End(), tab.Start()))
		}
		s.Append(tab.Primitive())
	}
	s.Append(sink.Line(tabs[len(tabs)-1].End(), tabs[0].Start()))
	return s.Flush()
}

// ShimBlock is the shim-sheet counterpart of a Block: the full center
// outline plus separator clips on the active branches.
type ShimBlock struct {
	Center geom.Point
	Hub    pattern.Hub
	// Mask selects the branches that get separators. A nil mask uses all.
	Mask   pattern.Mask
	Params pattern.Params
}

// Draw appends the center outline and then, per active direction, its
// separators, flushing once per direction.
func (b ShimBlock) Draw(s sink.Sink) error {
	mask, err := resolveMask(b.Mask, b.Hub)
	if err != nil {
		return err
	}
	tabs, err := CenterShim{Center: b.Center, Hub: b.Hub, Params: b.Params}.Tabs()
	if err != nil {
		return err
	}
	if err := drawOutline(s, tabs); err != nil {
		return err
	}
	for i, d := range pattern.Directions(b.Hub, b.Params.Angle) {
		if !mask[i] {
			continue
		}
		dims := b.Params.Dims(b.Hub, d.Role)
		origin := geom.At(b.Center, b.Params.Radius, d.Angle)
		centers := branch.SeparatorCenters(origin, d.Angle, dims, b.Params.BeamLength)
		if len(centers) == 0 {
			continue
		}
		for _, c := range centers {
			s.Append(branch.NewSeparator(c, d.Angle, dims.BeamGap, b.Params).Primitive())
		}
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Primitives returns the shim block geometry in drawing order.
func (b ShimBlock) Primitives() ([]sink.Primitive, error) {
	rec := sink.NewRecorder()
	if err := b.Draw(rec); err != nil {
		return nil, err
	}
	return rec.Primitives(), nil
}
