package boxes

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flowlane/pkg/core/flow"
	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/core/render"
)

// DefaultStroke is the box outline color.
var DefaultStroke = colorful.Color{R: 0.2, G: 0.2, B: 0.2}

var (
	defaultBackground = colorful.Color{R: 1, G: 1, B: 1}
	guideColor        = colorful.Color{R: 0.85, G: 0.85, B: 0.85}
)

// Option configures [Build].
type Option func(*builder)

type builder struct {
	palette     lanes.Palette
	background  *colorful.Color
	stroke      colorful.Color
	strokeWidth float64
	guides      bool
	labels      bool
}

// WithPalette sets the fill colors, cycled by element index.
func WithPalette(p lanes.Palette) Option {
	return func(b *builder) { b.palette = p }
}

// WithBackground sets the frame background. Pass nil for transparent.
func WithBackground(c *colorful.Color) Option {
	return func(b *builder) { b.background = c }
}

// WithStroke sets the box outline.
func WithStroke(c colorful.Color, width float64) Option {
	return func(b *builder) {
		b.stroke = c
		b.strokeWidth = width
	}
}

// WithRowGuides draws a thin line across the content area at the top of
// every row after the first.
func WithRowGuides() Option {
	return func(b *builder) { b.guides = true }
}

// WithoutLabels leaves the boxes unlabelled.
func WithoutLabels() Option {
	return func(b *builder) { b.labels = false }
}

// Build converts m into a scene. Guides are painted below the boxes.
func Build(m flow.Measurement, opts ...Option) render.Scene {
	bg := defaultBackground
	b := builder{
		palette:     lanes.DefaultPalette(),
		background:  &bg,
		stroke:      DefaultStroke,
		strokeWidth: 1,
		labels:      true,
	}
	for _, opt := range opts {
		opt(&b)
	}

	s := render.Scene{
		Width:      float64(m.Width),
		Height:     float64(m.Height),
		Background: b.background,
	}

	l := m.Layout()
	if b.guides {
		left := float64(l.Padding.Left)
		right := float64(m.Width - l.Padding.Right)
		y := l.Padding.Top
		for i, row := range m.Result.Rows {
			if i > 0 {
				gy := float64(y) - float64(l.VerticalSpacing)/2
				s.Add(render.Line{X1: left, Y1: gy, X2: right, Y2: gy, Width: 1, Color: guideColor})
			}
			y += row.Height + l.VerticalSpacing
		}
	}

	for i, p := range m.Place() {
		r := render.Rect{
			ID:          p.ID,
			X:           float64(p.X),
			Y:           float64(p.Y),
			W:           float64(p.Width),
			H:           float64(p.Height),
			Fill:        b.palette.Color(i),
			Stroke:      b.stroke,
			StrokeWidth: b.strokeWidth,
		}
		if b.labels {
			r.Label = p.ID
		}
		s.Add(r)
	}
	return s
}
