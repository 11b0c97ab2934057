package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/flowlane/pkg/cache"
	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/core/render/boxes"
	"github.com/matzehuels/flowlane/pkg/core/render/graph"
	pkgio "github.com/matzehuels/flowlane/pkg/io"
	"github.com/matzehuels/flowlane/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Pack lays out a flow document and renders it. Options override the
// document's width, mode and spacing; doc itself is not modified.
func (r *Runner) Pack(ctx context.Context, doc *pkgio.FlowDocument, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForPack(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	eff := applyFlowOverrides(*doc, opts)
	if err := eff.Validate(); err != nil {
		return nil, err
	}

	result, logger := r.newResult(opts, KindFlow, eff)
	result.Stats.Elements = len(eff.Elements)

	// Stage 1: Layout
	hooks := observability.Pipeline()
	hooks.OnPackStart(ctx, len(eff.Elements))
	start := time.Now()
	m, err := eff.Measure()
	result.Stats.LayoutTime = time.Since(start)
	if err != nil {
		hooks.OnPackComplete(ctx, 0, result.Stats.LayoutTime, err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	hooks.OnPackComplete(ctx, len(m.Result.Rows), result.Stats.LayoutTime, nil)
	result.Measurement = &m
	result.Stats.Rows = len(m.Result.Rows)

	logger.Info("packed elements",
		"elements", m.Result.Len(),
		"rows", len(m.Result.Rows),
		"frame", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"duration", result.Stats.LayoutTime)

	var boxOpts []boxes.Option
	if opts.RowGuides {
		boxOpts = append(boxOpts, boxes.WithRowGuides())
	}
	if bg, _ := opts.background(); bg != nil {
		boxOpts = append(boxOpts, boxes.WithBackground(bg))
	}
	palette, err := opts.palette()
	if err != nil {
		return nil, err
	}
	boxOpts = append(boxOpts, boxes.WithPalette(palette))
	if opts.StrokeWidth > 0 {
		boxOpts = append(boxOpts, boxes.WithStroke(boxes.DefaultStroke, opts.StrokeWidth))
	}
	if opts.NoLabels {
		boxOpts = append(boxOpts, boxes.WithoutLabels())
	}
	result.Scene = boxes.Build(m, boxOpts...)

	// Stage 2: Render
	err = r.render(ctx, result, logger, KindFlow, opts, func(w io.Writer) error {
		return pkgio.WriteFlowJSON(m, w)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Lanes renders a graph document row by row. Options override the
// document's metrics and palette; doc itself is not modified.
func (r *Runner) Lanes(ctx context.Context, doc *pkgio.GraphDocument, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLanes(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	eff := applyLaneOverrides(*doc, opts)
	if err := eff.Validate(); err != nil {
		return nil, err
	}
	palette, err := eff.PaletteValue()
	if err != nil {
		return nil, err
	}

	result, logger := r.newResult(opts, KindLanes, eff)
	result.Stats.Elements = len(eff.Rows)
	result.Stats.Rows = len(eff.Rows)

	geom := eff.Geometry()
	rows := eff.BuildRows()

	laneOpts := []lanes.Option{lanes.WithPalette(palette)}
	buildOpts := []graph.Option{graph.WithPalette(palette), graph.WithWorkers(opts.Workers)}
	if opts.StrokeWidth > 0 {
		laneOpts = append(laneOpts, lanes.WithStrokeWidth(opts.StrokeWidth))
		buildOpts = append(buildOpts, graph.WithStrokeWidth(opts.StrokeWidth))
	}
	if bg, _ := opts.background(); bg != nil {
		buildOpts = append(buildOpts, graph.WithBackground(*bg))
	}

	// Stage 1: Layout
	hooks := observability.Pipeline()
	hooks.OnLanesStart(ctx, len(rows))
	start := time.Now()
	scene, err := graph.Build(ctx, rows, geom, buildOpts...)
	result.Stats.LayoutTime = time.Since(start)
	if err != nil {
		hooks.OnLanesComplete(ctx, 0, result.Stats.LayoutTime, err)
		return nil, fmt.Errorf("layout: %w", err)
	}
	hooks.OnLanesComplete(ctx, len(scene.Shapes), result.Stats.LayoutTime, nil)
	result.Scene = scene
	result.Stats.Shapes = len(scene.Shapes)

	logger.Info("rendered lanes",
		"rows", len(rows),
		"shapes", len(scene.Shapes),
		"lane_unit", geom.LaneUnit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	err = r.render(ctx, result, logger, KindLanes, opts, func(w io.Writer) error {
		return pkgio.WriteGraphJSON(rows, geom, w, laneOpts...)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) newResult(opts Options, kind string, doc any) (*Result, *log.Logger) {
	runID := uuid.NewString()
	data, _ := json.Marshal(doc)
	result := &Result{
		RunID:     runID,
		DocHash:   cache.Hash(data),
		Artifacts: make(map[string][]byte),
	}
	return result, opts.Logger.With("run", runID[:8], "kind", kind)
}

// render fills result.Artifacts, from cache when every format is present.
func (r *Runner) render(ctx context.Context, result *Result, logger *log.Logger, kind string, opts Options, writeJSON func(io.Writer) error) error {
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	result.Stats.Shapes = len(result.Scene.Shapes)

	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	if !opts.Refresh {
		cached := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(kind, format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			cached[format] = data
		}
		if len(cached) == len(opts.Formats) {
			result.Artifacts = cached
			result.CacheInfo.RenderHit = true
			result.Stats.RenderTime = time.Since(start)
			hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)
			logger.Debug("artifacts from cache", "formats", opts.Formats)
			return nil
		}
	}

	artifacts, err := Render(ctx, result.Scene, opts, writeJSON)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return err
	}
	result.Artifacts = artifacts

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(result.DocHash, opts.ArtifactKeyOpts(kind, format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func applyFlowOverrides(doc pkgio.FlowDocument, opts Options) pkgio.FlowDocument {
	if opts.Width != nil {
		doc.Width = *opts.Width
	}
	if opts.WidthMode != "" {
		doc.WidthMode = opts.WidthMode
	}
	if opts.HorizontalSpacing != nil {
		doc.HorizontalSpacing = opts.HorizontalSpacing
	}
	if opts.VerticalSpacing != nil {
		doc.VerticalSpacing = opts.VerticalSpacing
	}
	return doc
}

func applyLaneOverrides(doc pkgio.GraphDocument, opts Options) pkgio.GraphDocument {
	if opts.RowHeight > 0 {
		doc.RowHeight = opts.RowHeight
	}
	if opts.Radius > 0 {
		doc.Radius = opts.Radius
	}
	if opts.Density > 0 {
		doc.Density = opts.Density
	}
	if len(opts.Palette) > 0 {
		doc.Palette = opts.Palette
	}
	return doc
}
