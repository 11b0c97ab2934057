package io

import (
	"github.com/matzehuels/flowlane/pkg/core/flow"
	"github.com/matzehuels/flowlane/pkg/errors"
)

// FlowDocument describes a flow container and its elements.
type FlowDocument struct {
	Width             int           `json:"width" yaml:"width" toml:"width"`
	Height            int           `json:"height" yaml:"height" toml:"height"`
	WidthMode         string        `json:"width_mode,omitempty" yaml:"width_mode,omitempty" toml:"width_mode"`
	HeightMode        string        `json:"height_mode,omitempty" yaml:"height_mode,omitempty" toml:"height_mode"`
	Padding           flow.Padding  `json:"padding" yaml:"padding" toml:"padding"`
	HorizontalSpacing *int          `json:"horizontal_spacing,omitempty" yaml:"horizontal_spacing,omitempty" toml:"horizontal_spacing"`
	VerticalSpacing   *int          `json:"vertical_spacing,omitempty" yaml:"vertical_spacing,omitempty" toml:"vertical_spacing"`
	Elements          []FlowElement `json:"elements" yaml:"elements" toml:"elements"`
}

// FlowElement is one child of a flow container.
type FlowElement struct {
	ID           string     `json:"id" yaml:"id" toml:"id"`
	Width        int        `json:"width" yaml:"width" toml:"width"`
	Height       int        `json:"height" yaml:"height" toml:"height"`
	LayoutWidth  LayoutSize `json:"layout_width" yaml:"layout_width" toml:"layout_width"`
	LayoutHeight LayoutSize `json:"layout_height" yaml:"layout_height" toml:"layout_height"`
	Gone         bool       `json:"gone,omitempty" yaml:"gone,omitempty" toml:"gone"`
}

type sizeCheck struct {
	what string
	n    int
}

// Validate checks sizes, spacing, padding and constraint modes.
func (d *FlowDocument) Validate() error {
	checks := []sizeCheck{
		{"width", d.Width},
		{"height", d.Height},
		{"padding.left", d.Padding.Left},
		{"padding.top", d.Padding.Top},
		{"padding.right", d.Padding.Right},
		{"padding.bottom", d.Padding.Bottom},
	}
	if d.HorizontalSpacing != nil {
		checks = append(checks, sizeCheck{"horizontal_spacing", *d.HorizontalSpacing})
	}
	if d.VerticalSpacing != nil {
		checks = append(checks, sizeCheck{"vertical_spacing", *d.VerticalSpacing})
	}
	for _, c := range checks {
		if err := errors.ValidateSize(c.what, c.n); err != nil {
			return err
		}
	}
	if _, err := d.Constraints(); err != nil {
		return err
	}
	for i, e := range d.Elements {
		if err := errors.ValidateSize("width", e.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "element %d (%s)", i, e.ID)
		}
		if err := errors.ValidateSize("height", e.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "element %d (%s)", i, e.ID)
		}
	}
	return nil
}

// Layout returns the container settings, using the default spacing where
// the document leaves it out.
func (d *FlowDocument) Layout() flow.Layout {
	l := flow.New(flow.WithPadding(d.Padding))
	if d.HorizontalSpacing != nil {
		l.HorizontalSpacing = *d.HorizontalSpacing
	}
	if d.VerticalSpacing != nil {
		l.VerticalSpacing = *d.VerticalSpacing
	}
	return l
}

// Constraints returns the measure constraints of the container.
func (d *FlowDocument) Constraints() (flow.Constraints, error) {
	w, err := axis("width_mode", d.WidthMode, d.Width)
	if err != nil {
		return flow.Constraints{}, err
	}
	h, err := axis("height_mode", d.HeightMode, d.Height)
	if err != nil {
		return flow.Constraints{}, err
	}
	return flow.Constraints{Width: w, Height: h}, nil
}

func axis(what, mode string, size int) (flow.Constraint, error) {
	if mode == "" && size == 0 {
		return flow.NoBound(), nil
	}
	m, err := flow.ParseMode(mode)
	if err != nil {
		return flow.Constraint{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", what)
	}
	return flow.Constraint{Size: size, Mode: m}, nil
}

// Children converts the elements to measurable children. Each element's
// width and height become its intrinsic content size.
func (d *FlowDocument) Children() []flow.Child {
	children := make([]flow.Child, len(d.Elements))
	for i, e := range d.Elements {
		children[i] = flow.Child{
			ID:           e.ID,
			LayoutWidth:  e.LayoutWidth.Value(),
			LayoutHeight: e.LayoutHeight.Value(),
			Content:      flow.Fixed{Width: e.Width, Height: e.Height},
			Gone:         e.Gone,
		}
	}
	return children
}

// Measure runs one measure pass over the document.
func (d *FlowDocument) Measure() (flow.Measurement, error) {
	c, err := d.Constraints()
	if err != nil {
		return flow.Measurement{}, err
	}
	return d.Layout().Measure(d.Children(), c), nil
}
