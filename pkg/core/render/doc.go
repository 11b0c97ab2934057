// Package render holds the backend-neutral scene that sinks draw.
//
// Both cores produce geometry, not pixels: the flow packer yields element
// origins and the lane renderer yields [lanes.Op] primitives. Builders in
// the sub-packages turn those into a [Scene], an ordered list of shapes
// inside a frame, and the sinks in [sink] write scenes out as SVG or PNG.
// Shapes are painted in slice order, later shapes on top.
//
// PDF output reuses the SVG sink and shells out to rsvg-convert, see
// [ToPDF].
package render
