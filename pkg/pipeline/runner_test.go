package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/flowlane/pkg/cache"
	"github.com/matzehuels/flowlane/pkg/core/render"
	"github.com/matzehuels/flowlane/pkg/errors"
	pkgio "github.com/matzehuels/flowlane/pkg/io"
	"github.com/matzehuels/flowlane/pkg/observability"
)

func flowDoc(t *testing.T) *pkgio.FlowDocument {
	t.Helper()
	doc, err := pkgio.ReadFlow(strings.NewReader(`{
		"width": 100,
		"elements": [
			{"id": "a", "width": 40, "height": 10},
			{"id": "b", "width": 40, "height": 10},
			{"id": "c", "width": 40, "height": 10}
		]
	}`), pkgio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func graphDoc(t *testing.T) *pkgio.GraphDocument {
	t.Helper()
	doc, err := pkgio.ReadGraph(strings.NewReader(`{
		"row_height": 20,
		"rows": [
			{"lane": 0, "parents": [0, 1]},
			{"lane": 1, "children": [0], "parents": [1], "passing": [0]},
			{"lane": 0, "children": [0, 1]}
		]
	}`), pkgio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRunner_Pack(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Pack(context.Background(), flowDoc(t), Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}

	if res.RunID == "" || res.DocHash == "" {
		t.Error("run id and doc hash should be set")
	}
	if res.Measurement == nil || len(res.Measurement.Result.Rows) != 2 {
		t.Fatalf("measurement = %+v, want 2 rows", res.Measurement)
	}
	if res.Stats.Elements != 3 || res.Stats.Rows != 2 || res.Stats.Shapes != 3 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if !bytes.Contains(res.Artifacts[FormatSVG], []byte(`id="box-c"`)) {
		t.Error("svg should contain box c")
	}

	var layout struct {
		Placements []struct {
			ID string `json:"id"`
			X  int    `json:"x"`
			Y  int    `json:"y"`
		} `json:"placements"`
	}
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &layout); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if c := layout.Placements[2]; c.ID != "c" || c.X != 0 || c.Y != 15 {
		t.Errorf("placement c = %+v, want (0, 15)", c)
	}
}

func TestRunner_PackOverrides(t *testing.T) {
	doc := flowDoc(t)
	zero := 0
	res, err := NewRunner(nil, nil, nil).Pack(context.Background(), doc, Options{Width: intp(200), HorizontalSpacing: &zero})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	if rows := len(res.Measurement.Result.Rows); rows != 1 {
		t.Errorf("rows = %d, want 1 at width 200", rows)
	}
	if res.Measurement.Width != 120 {
		t.Errorf("frame width = %d, want 120 with no spacing", res.Measurement.Width)
	}
	if doc.Width != 100 || doc.HorizontalSpacing != nil {
		t.Error("overrides must not modify the input document")
	}
}

func TestRunner_Lanes(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Lanes(context.Background(), graphDoc(t), Options{
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
		Scale:   1,
		Workers: 2,
	})
	if err != nil {
		t.Fatalf("Lanes() error: %v", err)
	}
	if res.Measurement != nil {
		t.Error("lane runs have no flow measurement")
	}
	if res.Scene.Width != 18 || res.Scene.Height != 60 {
		t.Errorf("scene = %vx%v, want 18x60", res.Scene.Width, res.Scene.Height)
	}
	if res.Stats.Shapes != 10 {
		t.Errorf("shapes = %d, want 10", res.Stats.Shapes)
	}

	img, err := png.Decode(bytes.NewReader(res.Artifacts[FormatPNG]))
	if err != nil {
		t.Fatalf("png artifact: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 18 || b.Dy() != 60 {
		t.Errorf("png bounds = %v, want 18x60", b)
	}
	if !json.Valid(res.Artifacts[FormatJSON]) {
		t.Error("json artifact is not valid JSON")
	}
}

func TestRunner_LanesOverrides(t *testing.T) {
	doc := graphDoc(t)
	res, err := NewRunner(nil, nil, nil).Lanes(context.Background(), doc, Options{
		Radius:  5,
		Palette: []string{"#000000"},
	})
	if err != nil {
		t.Fatalf("Lanes() error: %v", err)
	}
	if res.Scene.Width != 30 {
		t.Errorf("width = %v, want 30 with radius 5", res.Scene.Width)
	}
	svg := string(res.Artifacts[FormatSVG])
	if strings.Contains(svg, "#0099cc") || !strings.Contains(svg, "#000000") {
		t.Error("palette override should replace the default colors")
	}
	if doc.Radius != 0 || doc.Palette != nil {
		t.Error("overrides must not modify the input document")
	}
}

func TestRunner_CacheRoundTrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Lanes(ctx, graphDoc(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Lanes(ctx, graphDoc(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}

	refreshed, err := r.Lanes(ctx, graphDoc(t), Options{Formats: opts.Formats, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}

	other, err := r.Lanes(ctx, graphDoc(t), Options{Formats: opts.Formats, Radius: 4})
	if err != nil {
		t.Fatal(err)
	}
	if other.CacheInfo.RenderHit {
		t.Error("a different radius should miss the cache")
	}
}

func TestRunner_PackZeroWidth(t *testing.T) {
	res, err := NewRunner(nil, nil, nil).Pack(context.Background(), flowDoc(t), Options{Width: intp(0)})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	// Width 0 with no mode is unbounded: everything fits one row.
	if rows := len(res.Measurement.Result.Rows); rows != 1 {
		t.Errorf("rows = %d, want 1 with width 0", rows)
	}
}

func TestRunner_PackBoxStyle(t *testing.T) {
	res, err := NewRunner(nil, nil, nil).Pack(context.Background(), flowDoc(t), Options{NoLabels: true, StrokeWidth: 2})
	if err != nil {
		t.Fatalf("Pack() error: %v", err)
	}
	rects := 0
	for _, sh := range res.Scene.Shapes {
		r, ok := sh.(render.Rect)
		if !ok {
			continue
		}
		rects++
		if r.Label != "" {
			t.Errorf("rect %s label = %q, want none", r.ID, r.Label)
		}
		if r.StrokeWidth != 2 {
			t.Errorf("rect %s stroke width = %v, want 2", r.ID, r.StrokeWidth)
		}
	}
	if rects != 3 {
		t.Errorf("rects = %d, want 3", rects)
	}
}

func TestRunner_InvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Pack(context.Background(), flowDoc(t), Options{Formats: []string{"gif"}}); err == nil {
		t.Error("Pack() with bad format should fail")
	}
	if _, err := r.Pack(context.Background(), flowDoc(t), Options{Palette: []string{"not-a-color"}}); !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("Pack() with bad palette = %v, want INVALID_PALETTE", err)
	}
	if _, err := r.Lanes(context.Background(), graphDoc(t), Options{Palette: []string{"red"}}); err == nil {
		t.Error("Lanes() with bad palette should fail")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnPackStart(context.Context, int) { h.record("pack:start") }
func (h *recordingHooks) OnPackComplete(context.Context, int, time.Duration, error) {
	h.record("pack:done")
}
func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.record("render:start") }
func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.record("render:done")
}

func TestRunner_Hooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	if _, err := NewRunner(nil, nil, nil).Pack(context.Background(), flowDoc(t), Options{}); err != nil {
		t.Fatal(err)
	}
	want := []string{"pack:start", "pack:done", "render:start", "render:done"}
	if strings.Join(hooks.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}
