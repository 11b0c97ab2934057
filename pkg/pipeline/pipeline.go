// Package pipeline provides the layout → render pipeline behind the CLI.
//
// Both document kinds go through the same two stages:
//
//  1. Layout: measure a flow document with [flow.Layout], or build the lane
//     scene of a graph document with the graph stacker
//  2. Render: write the scene out in each requested format (SVG, PNG, PDF,
//     JSON), with rendered artifacts cached by document hash and options
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _ := pkgio.ImportGraph("history.yaml")
//	result, err := runner.Lanes(ctx, doc, pipeline.Options{Formats: []string{"svg", "png"}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Options can be loaded from a TOML config file with [LoadConfig] and then
// overridden field by field.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flowlane/pkg/cache"
	"github.com/matzehuels/flowlane/pkg/core/flow"
	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/core/render"
	"github.com/matzehuels/flowlane/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Kinds of pipeline runs, used in cache keys and logs.
const (
	KindFlow  = "flow"
	KindLanes = "lanes"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run. Zero values keep
// what the input document says.
type Options struct {
	// Flow options
	Width             *int   `toml:"width" json:"width,omitempty"`
	WidthMode         string `toml:"width_mode" json:"width_mode,omitempty"`
	HorizontalSpacing *int   `toml:"horizontal_spacing" json:"horizontal_spacing,omitempty"`
	VerticalSpacing   *int   `toml:"vertical_spacing" json:"vertical_spacing,omitempty"`
	RowGuides         bool   `toml:"row_guides" json:"row_guides,omitempty"`

	// Lane options
	RowHeight   float64  `toml:"row_height" json:"row_height,omitempty"`
	Radius      float64  `toml:"radius" json:"radius,omitempty"`
	Density     float64  `toml:"density" json:"density,omitempty"`
	StrokeWidth float64  `toml:"stroke_width" json:"stroke_width,omitempty"`
	Palette     []string `toml:"palette" json:"palette,omitempty"`
	Workers     int      `toml:"workers" json:"-"`

	// Render options
	Formats    []string `toml:"formats" json:"formats,omitempty"`
	Scale      float64  `toml:"scale" json:"scale,omitempty"`
	Title      string   `toml:"title" json:"title,omitempty"`
	Background string   `toml:"background" json:"background,omitempty"`
	NoLabels   bool     `toml:"no_labels" json:"no_labels,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `toml:"-" json:"-"` // skip cache reads
	Logger  *log.Logger `toml:"-" json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID tags every log line of the run.
	RunID string

	// DocHash is the content hash of the effective document.
	DocHash string

	// Measurement is the flow layout. It is nil for lane runs.
	Measurement *flow.Measurement

	// Scene is the drawable layout shared by the SVG and PNG sinks.
	Scene render.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Elements   int // flow elements or graph rows in the input
	Rows       int // packed rows or graph rows
	Shapes     int // shapes in the scene
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForPack checks the flow overrides.
func (o *Options) ValidateForPack() error {
	if o.Width != nil {
		if err := errors.ValidateSize("width", *o.Width); err != nil {
			return err
		}
	}
	if o.WidthMode != "" {
		if _, err := flow.ParseMode(o.WidthMode); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "width_mode")
		}
	}
	if o.HorizontalSpacing != nil {
		if err := errors.ValidateSize("horizontal spacing", *o.HorizontalSpacing); err != nil {
			return err
		}
	}
	if o.VerticalSpacing != nil {
		if err := errors.ValidateSize("vertical spacing", *o.VerticalSpacing); err != nil {
			return err
		}
	}
	if o.StrokeWidth != 0 {
		if err := errors.ValidatePositive("stroke width", o.StrokeWidth); err != nil {
			return err
		}
	}
	if _, err := o.palette(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// ValidateForLanes checks the lane overrides.
func (o *Options) ValidateForLanes() error {
	metrics := []struct {
		what string
		v    float64
	}{
		{"row height", o.RowHeight},
		{"radius", o.Radius},
		{"density", o.Density},
		{"stroke width", o.StrokeWidth},
	}
	for _, m := range metrics {
		if m.v != 0 {
			if err := errors.ValidatePositive(m.what, m.v); err != nil {
				return err
			}
		}
	}
	if _, err := o.palette(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if _, err := o.background(); err != nil {
		return err
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(kind, format string) cache.ArtifactKeyOpts {
	settings := struct {
		Scale       float64  `json:"scale,omitempty"`
		Title       string   `json:"title,omitempty"`
		Background  string   `json:"background,omitempty"`
		NoLabels    bool     `json:"no_labels,omitempty"`
		RowGuides   bool     `json:"row_guides,omitempty"`
		StrokeWidth float64  `json:"stroke_width,omitempty"`
		Palette     []string `json:"palette,omitempty"`
	}{o.Scale, o.Title, o.Background, o.NoLabels, o.RowGuides, o.StrokeWidth, o.Palette}
	return cache.ArtifactKeyOpts{Kind: kind, Format: format, Settings: settings}
}

func (o *Options) background() (*colorful.Color, error) {
	if o.Background == "" {
		return nil, nil
	}
	c, err := colorful.Hex(o.Background)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "background")
	}
	return &c, nil
}

// palette parses the palette override. The zero Palette means none is set.
func (o *Options) palette() (lanes.Palette, error) {
	if len(o.Palette) == 0 {
		return lanes.Palette{}, nil
	}
	p, err := lanes.NewPalette(o.Palette...)
	if err != nil {
		return lanes.Palette{}, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette")
	}
	return p, nil
}
