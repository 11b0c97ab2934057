package graph

import (
	"context"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sourcegraph/conc/pool"

	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/core/render"
	"github.com/matzehuels/flowlane/pkg/errors"
)

// Option configures [Build].
type Option func(*builder)

type builder struct {
	workers    int
	background *colorful.Color
	laneOpts   []lanes.Option
}

// WithWorkers bounds the number of rows rendered at once. Values below 1
// use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *builder) { b.workers = n }
}

// WithBackground sets the frame background. The default is transparent.
func WithBackground(c colorful.Color) Option {
	return func(b *builder) { b.background = &c }
}

// WithPalette sets the lane palette for every row.
func WithPalette(p lanes.Palette) Option {
	return func(b *builder) { b.laneOpts = append(b.laneOpts, lanes.WithPalette(p)) }
}

// WithStrokeWidth overrides the edge width for every row.
func WithStrokeWidth(w float64) Option {
	return func(b *builder) { b.laneOpts = append(b.laneOpts, lanes.WithStrokeWidth(w)) }
}

// Build renders rows top to bottom into one scene.
//
// Rows must not be nil and must use non-negative lanes. Rows are read but
// never modified, so callers may share them across concurrent builds.
func Build(ctx context.Context, rows []*lanes.Row, g lanes.Geometry, opts ...Option) (render.Scene, error) {
	b := builder{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&b)
	}
	if b.workers < 1 {
		b.workers = runtime.GOMAXPROCS(0)
	}

	if err := validate(rows, g); err != nil {
		return render.Scene{}, err
	}

	rendered := make([][]lanes.Op, len(rows))
	p := pool.New().WithMaxGoroutines(b.workers).WithContext(ctx).WithCancelOnError()
	for i, row := range rows {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered[i] = lanes.Render(row, g, b.laneOpts...)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return render.Scene{}, err
	}

	s := render.Scene{Background: b.background}
	if len(rows) == 0 {
		return s, nil
	}
	maxLane := 0
	for i, row := range rows {
		maxLane = max(maxLane, row.MaxLane())
		s.AddOps(rendered[i], float64(i)*g.RowHeight)
	}
	s.Width = g.Width(maxLane)
	s.Height = float64(len(rows)) * g.RowHeight
	return s, nil
}

func validate(rows []*lanes.Row, g lanes.Geometry) error {
	if err := errors.ValidatePositive("row height", g.RowHeight); err != nil {
		return err
	}
	if err := errors.ValidatePositive("node radius", g.NodeRadius); err != nil {
		return err
	}
	for i, row := range rows {
		if row == nil {
			return errors.New(errors.ErrCodeInvalidInput, "row %d is nil", i)
		}
		for _, lane := range laneRefs(row) {
			if err := errors.ValidateLane(lane); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidLane, err, "row %d", i)
			}
		}
	}
	return nil
}

func laneRefs(r *lanes.Row) []int {
	refs := []int{r.Lane()}
	refs = append(refs, r.Children()...)
	refs = append(refs, r.Parents()...)
	return append(refs, r.Passing()...)
}
