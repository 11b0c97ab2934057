package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flowlane/pkg/core/render"
)

const boxInteractionCSS = `
    .box { transition: stroke-width 0.2s ease; }
    .box:hover { stroke-width: 3; }
    .box-text { font-family: sans-serif; pointer-events: none; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title       string
	labels      bool
	interaction bool
	fontSize    float64
}

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithoutLabels omits box labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithInteraction adds hover styling for boxes.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interaction = true } }

// WithFontSize sets the label font size in pixels (default 11).
func WithFontSize(px float64) SVGOption { return func(r *svgRenderer) { r.fontSize = px } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{labels: true, fontSize: 11}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the scene as a standalone SVG document.
func RenderSVG(s render.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	if r.interaction {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", boxInteractionCSS)
	}
	if s.Background != nil {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
			num(s.Width), num(s.Height), s.Background.Hex())
	}

	for _, sh := range s.Shapes {
		switch sh := sh.(type) {
		case render.Line:
			renderLine(&buf, sh)
		case render.Circle:
			renderCircle(&buf, sh)
		case render.Rect:
			renderRect(&buf, sh, r)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLine(buf *bytes.Buffer, l render.Line) {
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), l.Color.Hex(), num(l.Width))
}

func renderCircle(buf *bytes.Buffer, c render.Circle) {
	fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(c.CX), num(c.CY), num(c.R), c.Color.Hex())
}

func renderRect(buf *bytes.Buffer, b render.Rect, r svgRenderer) {
	id := ""
	if b.ID != "" {
		id = fmt.Sprintf(` id="box-%s"`, html.EscapeString(b.ID))
	}
	fmt.Fprintf(buf, `  <rect class="box"%s x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		id, num(b.X), num(b.Y), num(b.W), num(b.H), b.Fill.Hex(), b.Stroke.Hex(), num(b.StrokeWidth))

	if !r.labels || b.Label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="box-text" x="%s" y="%s" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		num(b.X+b.W/2), num(b.Y+b.H/2), num(r.fontSize), textColor(b.Fill).Hex(), html.EscapeString(b.Label))
}

// textColor picks black or white, whichever reads better on fill.
func textColor(fill colorful.Color) colorful.Color {
	l, _, _ := fill.Lab()
	if l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		return "0"
	}
	return s
}
