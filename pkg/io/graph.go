package io

import (
	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/errors"
)

// DefaultRowHeight is the row height used when a graph document has none.
const DefaultRowHeight = 24.0

// GraphDocument lists the lane assignment of every row of a revision graph,
// top to bottom.
type GraphDocument struct {
	RowHeight float64    `json:"row_height,omitempty" yaml:"row_height,omitempty" toml:"row_height"`
	Radius    float64    `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius"`
	Density   float64    `json:"density,omitempty" yaml:"density,omitempty" toml:"density"`
	Palette   []string   `json:"palette,omitempty" yaml:"palette,omitempty" toml:"palette"`
	Rows      []GraphRow `json:"rows" yaml:"rows" toml:"rows"`
}

// GraphRow is the lane assignment of one row.
type GraphRow struct {
	Lane     int   `json:"lane" yaml:"lane" toml:"lane"`
	Children []int `json:"children,omitempty" yaml:"children,omitempty" toml:"children"`
	Parents  []int `json:"parents,omitempty" yaml:"parents,omitempty" toml:"parents"`
	Passing  []int `json:"passing,omitempty" yaml:"passing,omitempty" toml:"passing"`
}

// Validate checks lanes, metrics and palette colors.
func (d *GraphDocument) Validate() error {
	metrics := []struct {
		what string
		v    float64
	}{
		{"row_height", d.RowHeight},
		{"radius", d.Radius},
		{"density", d.Density},
	}
	for _, m := range metrics {
		// Zero selects the default.
		if m.v == 0 {
			continue
		}
		if err := errors.ValidatePositive(m.what, m.v); err != nil {
			return err
		}
	}
	if _, err := d.PaletteValue(); err != nil {
		return err
	}
	for i, r := range d.Rows {
		if err := r.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLane, err, "row %d", i)
		}
	}
	return nil
}

func (r GraphRow) validate() error {
	if err := errors.ValidateLane(r.Lane); err != nil {
		return err
	}
	for _, group := range [][]int{r.Children, r.Parents, r.Passing} {
		for _, lane := range group {
			if err := errors.ValidateLane(lane); err != nil {
				return err
			}
		}
	}
	return nil
}

// Geometry returns the row metrics, filling in defaults for zero values.
func (d *GraphDocument) Geometry() lanes.Geometry {
	rowHeight, radius, density := d.RowHeight, d.Radius, d.Density
	if rowHeight == 0 {
		rowHeight = DefaultRowHeight
	}
	if radius == 0 {
		radius = lanes.DefaultRadius
	}
	if density == 0 {
		density = 1
	}
	return lanes.NewGeometry(rowHeight, radius, density)
}

// PaletteValue parses the document palette. An empty list selects the
// default palette.
func (d *GraphDocument) PaletteValue() (lanes.Palette, error) {
	if len(d.Palette) == 0 {
		return lanes.DefaultPalette(), nil
	}
	p, err := lanes.NewPalette(d.Palette...)
	if err != nil {
		return lanes.Palette{}, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette")
	}
	return p, nil
}

// BuildRows converts the document rows to renderer rows. Child and parent
// lanes are added in document order.
func (d *GraphDocument) BuildRows() []*lanes.Row {
	rows := make([]*lanes.Row, len(d.Rows))
	for i, r := range d.Rows {
		row := lanes.NewRow(r.Lane)
		for _, l := range r.Children {
			row.AddChildLane(l)
		}
		for _, l := range r.Parents {
			row.AddParentLane(l)
		}
		row.SetPassing(r.Passing...)
		rows[i] = row
	}
	return rows
}
