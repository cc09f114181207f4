// Package tessellation tiles building blocks across a rows × cols grid.
//
// Cell (i, j) is centred at
//
//	x = origin.x + j·D + (i even ? D/2 : 0)
//	y = origin.y − i·(2r + L)·sin θ
//
// with D = 2·cos θ·(L + 2r), so even rows are staggered half a column to
// the right and every diagonal branch lands exactly on a hub of the
// adjacent row.
//
// Edges between neighbouring cells are drawn once. Directions that point
// up or left (180°, 180°−θ, θ, and 90° on octagonal hubs) are suppressed
// whenever the cell they reach exists, because that cell draws the same
// edge with its downward or rightward branch. See [Grid.Mask].
//
// The shim sheet chains its rows: each row starts from the far end of the
// previous row's first hub's lower branch. See [Grid.ShimCenters].
package tessellation
