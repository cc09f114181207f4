// Package block draws one hub of the tessellation together with the
// branches radiating from it.
//
// A [Block] is the panel-sheet hub: one branch per active direction and, in
// cut style, a small support strut at every direction. [CenterShim] and
// [ShimBlock] are the spacer-sheet counterparts: a closed star outline made
// of one tab per direction, plus separator clips along the active branches.
//
// All geometry of a block is computed and checked before the first
// primitive reaches the sink, so an invalid block never leaves partial
// output behind.
package block
