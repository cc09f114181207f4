// Package pkg holds the libraries behind foldcut, a generator for the
// laser-cut line drawings of Yoshimura/Miura origami tessellations.
//
// # Overview
//
// A sheet is a grid of building blocks. Each block is a hub with six
// (hexagonal) or eight (octagonal) branches; each branch is a flexure hinge
// made of thin beams. A second "shim" sheet with the same layout stiffens the
// panels between the hinges.
//
// The packages build on each other:
//
//  1. [geom] - points, directions and bounds on top of github.com/jbeda/geom
//  2. [pattern] - parameters, hub directions and roles, per-role dimensions,
//     activation masks and validation
//  3. [branch] - one hinge branch (cut or tape style), shim tabs and separators
//  4. [block] - panel and shim building blocks
//  5. [tessellation] - grid centers, neighbour masks, panel and shim sheets
//  6. [sink] - primitives, the append/flush sink contract and encoders for
//     DXF, SVG, PDF and JSON
//  7. [pipeline] - validate, generate, write; one helper per family
//
// Supporting packages: [preset] (TOML configurations), [cache] (opt-in
// artifact cache), [errors] (coded errors), [observability] (hooks) and
// [buildinfo].
//
// # Data flow
//
//	preset / flags
//	      ↓
//	[pipeline.Options] (validated before any geometry)
//	      ↓
//	[tessellation.Grid] → [block.Block] → [branch.Branch]
//	      ↓
//	[sink.Recorder] (primitives in emission order)
//	      ↓
//	[sink.File] + encoder → out.dxf, out.svg, out.pdf, out.json
//
// # Quick start
//
//	res, err := pipeline.Tessellation(ctx, pattern.Defaults(), 3, 3, "sheet")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Artifacts["dxf"]) // sheet.dxf
package pkg
