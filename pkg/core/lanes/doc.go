// Package lanes draws one row of a commit graph.
//
// A commit graph is drawn as a stack of rows, one per commit. Each row knows
// which lane (vertical track) its commit occupies, which lanes its edges run
// to above (children) and below (parents), and which lanes belong to
// unrelated commits merely passing through. Topology (who is whose parent)
// is computed elsewhere; this package only turns one row's lane assignment
// into draw primitives.
//
// # Edge Rerouting
//
// An edge whose target lane is occupied by a passing lane is drawn through
// the commit's own lane instead, and takes that lane's color. Passing lanes
// themselves are always straight vertical strokes in their own color.
//
// # Draw Order
//
// [Render] emits child edges, then parent edges, then passing lanes, and
// finally the node circle, so the node is painted on top of every line.
//
// # Colors
//
// [Palette] maps lanes to colors cyclically. The default palette has five
// colors, so lanes 2 and 7 share a color.
package lanes
