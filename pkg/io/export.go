package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flowlane/pkg/core/flow"
	"github.com/matzehuels/flowlane/pkg/core/lanes"
)

type flowLayout struct {
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	ContentWidth  int             `json:"content_width"`
	ContentHeight int             `json:"content_height"`
	Rows          []flowRow       `json:"rows"`
	Placements    []flowPlacement `json:"placements"`
}

type flowRow struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Elements []string `json:"elements"`
}

type flowPlacement struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type graphLayout struct {
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	RowHeight float64    `json:"row_height"`
	LaneUnit  float64    `json:"lane_unit"`
	Radius    float64    `json:"radius"`
	Rows      []graphRow `json:"rows"`
}

type graphRow struct {
	Lane int      `json:"lane"`
	Ops  []drawOp `json:"ops"`
}

type drawOp struct {
	Kind   string       `json:"kind"`
	From   *lanes.Point `json:"from,omitempty"`
	To     *lanes.Point `json:"to,omitempty"`
	Center *lanes.Point `json:"center,omitempty"`
	Radius float64      `json:"radius,omitempty"`
	Width  float64      `json:"width,omitempty"`
	Color  string       `json:"color"`
}

// WriteFlowJSON writes the rows and element origins of m to w.
func WriteFlowJSON(m flow.Measurement, w io.Writer) error {
	out := flowLayout{
		Width:         m.Width,
		Height:        m.Height,
		ContentWidth:  m.Result.Width,
		ContentHeight: m.Result.Height,
		Rows:          make([]flowRow, len(m.Result.Rows)),
		Placements:    make([]flowPlacement, 0, m.Result.Len()),
	}

	placed := m.Place()
	for i, row := range m.Result.Rows {
		ids := make([]string, len(row.Elements))
		for j, e := range row.Elements {
			ids[j] = e.ID
			p := placed[len(out.Placements)]
			out.Placements = append(out.Placements, flowPlacement{
				ID: p.ID, Row: i, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
			})
		}
		out.Rows[i] = flowRow{Width: row.Width, Height: row.Height, Elements: ids}
	}
	return encode(w, out)
}

// WriteGraphJSON writes the draw primitives of every row to w, in paint
// order. Row coordinates are local to the row.
func WriteGraphJSON(rows []*lanes.Row, g lanes.Geometry, w io.Writer, opts ...lanes.Option) error {
	out := graphLayout{
		Height:    float64(len(rows)) * g.RowHeight,
		RowHeight: g.RowHeight,
		LaneUnit:  g.LaneUnit,
		Radius:    g.NodeRadius,
		Rows:      make([]graphRow, len(rows)),
	}

	maxLane := 0
	for i, r := range rows {
		maxLane = max(maxLane, r.MaxLane())
		ops := lanes.Render(r, g, opts...)
		gr := graphRow{Lane: r.Lane(), Ops: make([]drawOp, len(ops))}
		for j, op := range ops {
			gr.Ops[j] = toDrawOp(op)
		}
		out.Rows[i] = gr
	}
	if len(rows) > 0 {
		out.Width = g.Width(maxLane)
	}
	return encode(w, out)
}

func toDrawOp(op lanes.Op) drawOp {
	switch op := op.(type) {
	case lanes.Line:
		return drawOp{Kind: "line", From: &op.From, To: &op.To, Width: op.Width, Color: op.Color.Hex()}
	case lanes.Circle:
		return drawOp{Kind: "circle", Center: &op.Center, Radius: op.Radius, Color: op.Color.Hex()}
	}
	return drawOp{Kind: fmt.Sprintf("%T", op)}
}

// ExportFlowJSON writes the flow layout of m to a JSON file at path.
func ExportFlowJSON(m flow.Measurement, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteFlowJSON(m, w) })
}

// ExportGraphJSON writes the graph draw primitives to a JSON file at path.
func ExportGraphJSON(rows []*lanes.Row, g lanes.Geometry, path string, opts ...lanes.Option) error {
	return exportFile(path, func(w io.Writer) error { return WriteGraphJSON(rows, g, w, opts...) })
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
