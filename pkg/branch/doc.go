// Package branch draws the straight connectors between two hubs.
//
// A cut-style [Branch] leaves the two panels joined by a row of U-shaped
// beams: four extremity lines (one per end and side, offset panel_gap/2 from
// the axis) and beam_count U polylines on each side. A tape-style branch
// replaces all of that with beam_count closed full-width rectangles.
//
// The shim sheet uses [Tab], the outward outline of one branch on the
// spacer, and [Separator], the H-shaped clip that sits between two beams.
package branch
