// Package boxes turns a flow measurement into a [render.Scene].
//
// Every placed element becomes one labelled [render.Rect] at its packed
// origin, filled from a lane palette by element index. The frame is the
// measured container size, padding included, so the scene shows exactly
// what a host would lay out.
//
//	m := flow.New().Measure(children, constraints)
//	scene := boxes.Build(m, boxes.WithRowGuides())
//	svg := sink.RenderSVG(scene)
package boxes
