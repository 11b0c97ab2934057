// Package graph stacks lane rows into one [render.Scene].
//
// A revision graph is drawn as a column of equally tall rows. Each row is
// rendered independently with [lanes.Render], so rows are rendered
// concurrently on a bounded worker pool and then assembled in row order:
// row i is shifted down by i row heights. Within a row the paint order of
// [lanes.Render] is preserved, which keeps every node circle above its own
// edges. Edges of a later row may overlap the circle of an earlier one at
// the shared row boundary, as they do in a scrolling list of rows.
//
// The frame is as wide as the widest row needs, see [lanes.Geometry.Width].
package graph
