package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/flowlane/pkg/core/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale  float64
	labels bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithoutPNGLabels omits box labels.
func WithoutPNGLabels() PNGOption {
	return func(r *pngRenderer) { r.labels = false }
}

// RenderPNG rasterizes the scene. Shapes are painted in scene order.
func RenderPNG(s render.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("png scale must be positive, got %g", r.scale)
	}

	w := int(math.Ceil(s.Width * r.scale))
	h := int(math.Ceil(s.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot rasterize empty scene (%gx%g)", s.Width, s.Height)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	if s.Background != nil {
		dc.SetColor(*s.Background)
		dc.Clear()
	}

	for _, sh := range s.Shapes {
		switch sh := sh.(type) {
		case render.Line:
			dc.SetColor(sh.Color)
			dc.SetLineWidth(sh.Width)
			dc.SetLineCap(gg.LineCapRound)
			dc.DrawLine(sh.X1, sh.Y1, sh.X2, sh.Y2)
			dc.Stroke()
		case render.Circle:
			dc.SetColor(sh.Color)
			dc.DrawCircle(sh.CX, sh.CY, sh.R)
			dc.Fill()
		case render.Rect:
			dc.DrawRectangle(sh.X, sh.Y, sh.W, sh.H)
			dc.SetColor(sh.Fill)
			dc.FillPreserve()
			dc.SetColor(sh.Stroke)
			dc.SetLineWidth(sh.StrokeWidth)
			dc.Stroke()
			if r.labels && sh.Label != "" {
				dc.SetColor(textColor(sh.Fill))
				dc.DrawStringAnchored(sh.Label, sh.X+sh.W/2, sh.Y+sh.H/2, 0.5, 0.5)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
