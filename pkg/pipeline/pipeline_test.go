package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/flowlane/pkg/errors"
)

func intp(n int) *int { return &n }

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format error = %v, want INVALID_FORMAT", err)
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	var o Options
	o.SetRenderDefaults()
	if !reflect.DeepEqual(o.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", o.Scale, DefaultScale)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	neg := -1
	tests := []struct {
		name  string
		opts  Options
		lanes bool
		code  errors.Code
	}{
		{"negative width", Options{Width: intp(-5)}, false, errors.ErrCodeInvalidSize},
		{"bad width mode", Options{WidthMode: "sideways"}, false, errors.ErrCodeInvalidConfig},
		{"negative spacing", Options{HorizontalSpacing: &neg}, false, errors.ErrCodeInvalidSize},
		{"bad format", Options{Formats: []string{"gif"}}, false, errors.ErrCodeInvalidFormat},
		{"negative scale", Options{Scale: -2}, false, errors.ErrCodeInvalidSize},
		{"bad background", Options{Background: "teal"}, false, errors.ErrCodeInvalidConfig},
		{"bad pack palette", Options{Palette: []string{"not-a-color"}}, false, errors.ErrCodeInvalidPalette},
		{"negative pack stroke", Options{StrokeWidth: -1}, false, errors.ErrCodeInvalidSize},
		{"negative radius", Options{Radius: -3}, true, errors.ErrCodeInvalidSize},
		{"negative density", Options{Density: -1}, true, errors.ErrCodeInvalidSize},
		{"bad palette", Options{Palette: []string{"#12"}}, true, errors.ErrCodeInvalidPalette},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.lanes {
				err = tt.opts.ValidateForLanes()
			} else {
				err = tt.opts.ValidateForPack()
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("validate error = %v, want code %s", err, tt.code)
			}
		})
	}

	ok := Options{Width: intp(200), WidthMode: "exact", Radius: 4, Palette: []string{"#abc"}, Background: "#ffffff"}
	if err := ok.ValidateForPack(); err != nil {
		t.Errorf("ValidateForPack() error: %v", err)
	}
	if err := ok.ValidateForLanes(); err != nil {
		t.Errorf("ValidateForLanes() error: %v", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	a := Options{Scale: 2}
	b := Options{Scale: 3}
	if reflect.DeepEqual(a.ArtifactKeyOpts(KindLanes, FormatPNG), b.ArtifactKeyOpts(KindLanes, FormatPNG)) {
		t.Error("scale should be part of the artifact key")
	}
	if got := a.ArtifactKeyOpts(KindFlow, FormatSVG); got.Kind != KindFlow || got.Format != FormatSVG {
		t.Errorf("ArtifactKeyOpts = %+v", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
width = 320
horizontal_spacing = 0
radius = 4
palette = ["#0099CC", "#9933CC"]
formats = ["svg", "png"]
workers = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if opts.Width == nil || *opts.Width != 320 || opts.Radius != 4 || opts.Workers != 2 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.HorizontalSpacing == nil || *opts.HorizontalSpacing != 0 {
		t.Errorf("HorizontalSpacing = %v, want explicit 0", opts.HorizontalSpacing)
	}
	if opts.VerticalSpacing != nil {
		t.Errorf("VerticalSpacing = %v, want unset", *opts.VerticalSpacing)
	}
	if !reflect.DeepEqual(opts.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v, want FILE_NOT_FOUND", err)
	}

	typo := filepath.Join(dir, "typo.toml")
	if err := os.WriteFile(typo, []byte("radious = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(typo); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown key error = %v, want INVALID_CONFIG", err)
	}

	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("width = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(broken); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("syntax error = %v, want INVALID_CONFIG", err)
	}
}
