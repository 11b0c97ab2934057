package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/matzehuels/flowlane/pkg/core/render"
	"github.com/matzehuels/flowlane/pkg/core/render/sink"
)

// Render writes a scene out in every requested format. writeJSON produces
// the JSON artifact, which carries layout data rather than shapes.
func Render(ctx context.Context, s render.Scene, opts Options, writeJSON func(io.Writer) error) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(opts)
	pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.NoLabels {
		pngOpts = append(pngOpts, sink.WithoutPNGLabels())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(s, pngOpts...)
		case FormatPDF:
			data, err = render.ToPDF(ctx, sink.RenderSVG(s, svgOpts...))
		case FormatJSON:
			var buf bytes.Buffer
			err = writeJSON(&buf)
			data = buf.Bytes()
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	} else {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	return svgOpts
}
