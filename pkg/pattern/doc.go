// Package pattern holds the configuration shared by every generator in a run.
//
// # Parameters
//
// [Params] is the single configuration struct for a Yoshimura/Miura sheet:
// hub radius, nominal branch length, fold angle θ, beam layout, and the
// shim-only ratio and margin. It is validated once, up front, by
// [Params.Validate] so no generator ever starts emitting geometry for an
// infeasible configuration.
//
// # Hubs and directions
//
// A hub radiates branches at fixed angles. The hexagonal hub uses
//
//	0°, θ, 180°−θ, 180°, 180°+θ, −θ
//
// and the octagonal (extended) hub inserts the axis-aligned 90° and −90°:
//
//	0°, θ, 90°, 180°−θ, 180°, 180°+θ, −90°, −θ
//
// Each direction has a [Role]. Spines connect hubs of the same row,
// perpendiculars connect hubs two rows apart, diagonals connect adjacent
// rows. [Params.Dims] maps a role to the branch length, beam count and beam
// gap; both the panel and the shim generators read it, so the two sheets
// always agree.
//
// # Activation masks
//
// A [Mask] says which directions of a block are drawn. Masks are plain
// values built fresh for every call; see [AllActive].
package pattern
