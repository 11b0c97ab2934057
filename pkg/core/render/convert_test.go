package render

import (
	"context"
	"os/exec"
	"testing"

	"github.com/matzehuels/flowlane/pkg/errors"
)

func TestToPDF_MissingConverter(t *testing.T) {
	old := rsvgConvert
	rsvgConvert = "flowlane-no-such-converter"
	t.Cleanup(func() { rsvgConvert = old })

	_, err := ToPDF(context.Background(), []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestToPDF(t *testing.T) {
	if _, err := exec.LookPath(rsvgConvert); err != nil {
		t.Skip("rsvg-convert not installed")
	}

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="3" fill="#0099cc"/></svg>`)
	pdf, err := ToPDF(context.Background(), svg)
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("ToPDF() output does not start with %%PDF")
	}
}
