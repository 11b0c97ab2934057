package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/flowlane/pkg/io"
	"github.com/matzehuels/flowlane/pkg/pipeline"
)

// renderFlags holds the output flags shared by pack and lanes.
type renderFlags struct {
	formats    string
	output     string
	title      string
	background string
	palette    string
	scale      float64
	noLabels   bool
	noCache    bool
	refresh    bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output formats: svg, png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&f.title, "title", "", "title embedded in the SVG output")
	cmd.Flags().StringVar(&f.background, "background", "", "background color as #rrggbb")
	cmd.Flags().StringVar(&f.palette, "palette", "", "palette colors as comma-separated #rrggbb values")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "PNG scale factor (default 2)")
	cmd.Flags().BoolVar(&f.noLabels, "no-labels", false, "omit element labels")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "re-render even when cached")
}

// apply layers every flag the user set over the config file options.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("title") {
		opts.Title = f.title
	}
	if changed("background") {
		opts.Background = f.background
	}
	if changed("palette") {
		opts.Palette = parseList(f.palette)
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("no-labels") {
		opts.NoLabels = f.noLabels
	}
	opts.Refresh = f.refresh
}

// packCommand creates the pack command for laying out flow documents.
func (c *CLI) packCommand() *cobra.Command {
	var (
		rf        renderFlags
		width     int
		widthMode string
		spacingH  int
		spacingV  int
		guides    bool
		stroke    float64
	)

	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Pack the elements of a flow document into wrapped rows",
		Long: `Pack places the elements of a flow document left to right, wrapping
to a new row when the next element no longer fits the available width.

The document may be JSON, YAML or TOML. Flags override the document's
width, width mode and spacing.`,
		Example: `  flowlane pack toolbar.yaml
  flowlane pack toolbar.json --width 320 -f svg,png -o out/toolbar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			changed := cmd.Flags().Changed
			if changed("width") {
				opts.Width = &width
			}
			if changed("width-mode") {
				opts.WidthMode = widthMode
			}
			if changed("spacing-h") {
				opts.HorizontalSpacing = &spacingH
			}
			if changed("spacing-v") {
				opts.VerticalSpacing = &spacingV
			}
			if changed("guides") {
				opts.RowGuides = guides
			}
			if changed("stroke-width") {
				opts.StrokeWidth = stroke
			}
			rf.apply(cmd, &opts)
			return c.runPack(cmd.Context(), args[0], opts, rf)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "available width in pixels")
	cmd.Flags().StringVar(&widthMode, "width-mode", "", "width constraint: exact, at_most or unbounded")
	cmd.Flags().IntVar(&spacingH, "spacing-h", 0, "horizontal spacing between elements")
	cmd.Flags().IntVar(&spacingV, "spacing-v", 0, "vertical spacing between rows")
	cmd.Flags().BoolVar(&guides, "guides", false, "draw a guide line between rows")
	cmd.Flags().Float64Var(&stroke, "stroke-width", 0, "box outline width (default 1)")
	rf.register(cmd)

	return cmd
}

func (c *CLI) runPack(ctx context.Context, input string, opts pipeline.Options, rf renderFlags) error {
	prog := newProgress(c.Logger)

	doc, err := pkgio.ImportFlow(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	c.Logger.Debug("loaded flow document", "path", input, "elements", len(doc.Elements))

	runner, err := c.newRunner(rf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	result, err := runner.Pack(ctx, doc, opts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, formatsOf(result, opts), rf.output, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))

	m := result.Measurement
	printSuccess("Packed %d elements into %d rows (%dx%d)", result.Stats.Elements, result.Stats.Rows, m.Width, m.Height)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats, result.CacheInfo.RenderHit)
	return nil
}

// formatsOf returns the formats the run rendered, falling back to the
// artifact keys when options left them at their default.
func formatsOf(result *pipeline.Result, opts pipeline.Options) []string {
	if len(opts.Formats) > 0 {
		return opts.Formats
	}
	out := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		out = append(out, f)
	}
	return out
}

// parseList splits a comma-separated list, dropping empty entries.
func parseList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
