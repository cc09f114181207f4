package pipeline

import (
	"context"

	"github.com/matzehuels/foldcut/pkg/block"
	"github.com/matzehuels/foldcut/pkg/branch"
	"github.com/matzehuels/foldcut/pkg/geom"
	"github.com/matzehuels/foldcut/pkg/pattern"
	"github.com/matzehuels/foldcut/pkg/sink"
	"github.com/matzehuels/foldcut/pkg/tessellation"
)

func (o *Options) origin() geom.Point {
	return geom.Pt(o.Origin[0], o.Origin[1])
}

func (o *Options) style() branch.Style {
	if o.Family == FamilyTape {
		return branch.Tape
	}
	return branch.Cut
}

func (o *Options) grid() tessellation.Grid {
	return tessellation.Grid{
		Rows:   o.Rows,
		Cols:   o.Cols,
		Origin: o.origin(),
		Hub:    o.hub,
		Style:  o.style(),
		Params: o.Params,
	}
}

// Cells returns the number of blocks the run draws.
func (o *Options) Cells() int {
	if o.IsGrid() {
		return o.grid().Cells()
	}
	return 1
}

// Generate draws the configured family into s. Options must have been
// validated.
func Generate(o *Options, s sink.Sink) error {
	switch o.Family {
	case FamilyBlock:
		b := block.Block{Center: o.origin(), Hub: o.hub, Style: branch.Cut, Params: o.Params}
		return b.Draw(s)
	case FamilyShimBlock:
		b := block.ShimBlock{Center: o.origin(), Hub: o.hub, Params: o.Params}
		return b.Draw(s)
	case FamilyShim:
		return o.grid().DrawShim(s)
	default:
		return o.grid().Draw(s)
	}
}

func run(ctx context.Context, opts Options) (*Result, error) {
	return NewRunner(nil, nil, nil).Execute(ctx, opts)
}

// Tessellation writes a hexagonal cut-style panel sheet to output.dxf.
func Tessellation(ctx context.Context, p pattern.Params, rows, cols int, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyTessellation, Rows: rows, Cols: cols, Params: p, Output: output})
}

// Tape writes a hexagonal tape-style panel sheet to output.dxf.
func Tape(ctx context.Context, p pattern.Params, rows, cols int, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyTape, Rows: rows, Cols: cols, Params: p, Output: output})
}

// Shim writes a hexagonal shim sheet to output.dxf.
func Shim(ctx context.Context, p pattern.Params, rows, cols int, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyShim, Rows: rows, Cols: cols, Params: p, Output: output})
}

// Extended writes an octagonal cut-style panel sheet to output.dxf.
func Extended(ctx context.Context, p pattern.Params, rows, cols int, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyTessellation, Hub: pattern.HubOct, Rows: rows, Cols: cols, Params: p, Output: output})
}

// ExtendedShim writes an octagonal shim sheet to output.dxf.
func ExtendedShim(ctx context.Context, p pattern.Params, rows, cols int, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyShim, Hub: pattern.HubOct, Rows: rows, Cols: cols, Params: p, Output: output})
}

// Block writes one isolated building block centred at the origin.
func Block(ctx context.Context, hub pattern.Hub, p pattern.Params, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyBlock, Hub: hub.String(), Params: p, Output: output})
}

// ShimBlock writes one isolated shim building block centred at the origin.
func ShimBlock(ctx context.Context, hub pattern.Hub, p pattern.Params, output string) (*Result, error) {
	return run(ctx, Options{Family: FamilyShimBlock, Hub: hub.String(), Params: p, Output: output})
}
