package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/flowlane/pkg/io"
	"github.com/matzehuels/flowlane/pkg/pipeline"
)

// lanesCommand creates the lanes command for drawing revision-graph rows.
func (c *CLI) lanesCommand() *cobra.Command {
	var (
		rf          renderFlags
		radius      float64
		density     float64
		rowHeight   float64
		strokeWidth float64
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "lanes [file]",
		Short: "Draw the colored lanes of a revision graph",
		Long: `Lanes draws one row per revision: the node circle on its lane, a line to
each child lane above, a line to each parent lane below, and a straight
segment for every lane passing through.

The document may be JSON, YAML or TOML. Rows are rendered in parallel and
stacked top to bottom.`,
		Example: `  flowlane lanes history.yaml
  flowlane lanes history.json --radius 4 --density 2 -f svg,png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			changed := cmd.Flags().Changed
			if changed("radius") {
				opts.Radius = radius
			}
			if changed("density") {
				opts.Density = density
			}
			if changed("row-height") {
				opts.RowHeight = rowHeight
			}
			if changed("stroke-width") {
				opts.StrokeWidth = strokeWidth
			}
			if changed("workers") {
				opts.Workers = workers
			}
			rf.apply(cmd, &opts)
			return c.runLanes(cmd.Context(), args[0], opts, rf)
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 0, "node radius in density-independent pixels (default 3)")
	cmd.Flags().Float64Var(&density, "density", 0, "pixels per density-independent pixel (default 1)")
	cmd.Flags().Float64Var(&rowHeight, "row-height", 0, "height of one row in pixels")
	cmd.Flags().Float64Var(&strokeWidth, "stroke-width", 0, "lane line width (default: the node radius)")
	cmd.Flags().IntVar(&workers, "workers", 0, "rows rendered in parallel (default GOMAXPROCS)")
	rf.register(cmd)

	return cmd
}

func (c *CLI) runLanes(ctx context.Context, input string, opts pipeline.Options, rf renderFlags) error {
	prog := newProgress(c.Logger)

	doc, err := pkgio.ImportGraph(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	c.Logger.Debug("loaded graph document", "path", input, "rows", len(doc.Rows))

	runner, err := c.newRunner(rf.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	result, err := runner.Lanes(ctx, doc, opts)
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, formatsOf(result, opts), rf.output, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))

	printSuccess("Drew %d rows (%gx%g)", result.Stats.Rows, result.Scene.Width, result.Scene.Height)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats, result.CacheInfo.RenderHit)
	return nil
}
