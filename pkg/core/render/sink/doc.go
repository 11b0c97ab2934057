// Package sink writes a [render.Scene] out in a concrete format.
//
// # Overview
//
//   - SVG: hand-written markup, one element per shape, in paint order
//   - PNG: rasterized with fogleman/gg
//   - PDF: the SVG output converted by rsvg-convert (see [render.ToPDF])
//
// Basic usage:
//
//	svg := sink.RenderSVG(scene, sink.WithTitle("history"))
//	png, err := sink.RenderPNG(scene, sink.WithScale(2))
//
// Sinks never reorder shapes: a scene built from lane draw ops keeps the
// node circle on top of its edges in every format.
package sink
