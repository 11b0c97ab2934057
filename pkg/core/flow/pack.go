package flow

// Element is a measured size in device pixels.
type Element struct {
	ID     string
	Width  int
	Height int
}

// Row is an insertion-ordered group of elements packed together.
type Row struct {
	Elements []Element
	Width    int // sum of element widths plus spacing between them
	Height   int // tallest element
}

// wouldOverflow reports whether appending an element of width w pushes the
// row past maxWidth. An empty row never overflows.
func (r *Row) wouldOverflow(w, maxWidth, spacing int) bool {
	if len(r.Elements) == 0 {
		return false
	}
	return r.Width+spacing+w > maxWidth
}

func (r *Row) add(e Element, spacing int) {
	if len(r.Elements) > 0 {
		r.Width += spacing
	}
	r.Width += e.Width
	r.Height = max(r.Height, e.Height)
	r.Elements = append(r.Elements, e)
}

// Result is the outcome of the measure phase.
type Result struct {
	Rows   []Row
	Width  int // widest row
	Height int // row heights plus vertical spacing between rows
}

// Len returns the number of packed elements.
func (r Result) Len() int {
	n := 0
	for _, row := range r.Rows {
		n += len(row.Elements)
	}
	return n
}

// Pack assigns elements to rows greedily, left to right, without reordering.
//
// When bounded is false the width is unconstrained and every element lands
// in a single row. Otherwise a new row starts whenever the next element
// (plus one spacing gap) would make the current row wider than maxWidth. An
// element wider than maxWidth on its own still gets a row to itself.
//
// Empty input yields a Result with no rows and zero size.
func Pack(elements []Element, maxWidth int, bounded bool, hSpacing, vSpacing int) Result {
	if len(elements) == 0 {
		return Result{}
	}

	var rows []Row
	current := Row{}
	for _, e := range elements {
		if bounded && current.wouldOverflow(e.Width, maxWidth, hSpacing) {
			rows = append(rows, current)
			current = Row{}
		}
		current.add(e, hSpacing)
	}
	rows = append(rows, current)

	res := Result{Rows: rows}
	for i, row := range rows {
		res.Height += row.Height
		if i < len(rows)-1 {
			res.Height += vSpacing
		}
		res.Width = max(res.Width, row.Width)
	}
	return res
}

// Placement is the origin assigned to one element.
type Placement struct {
	Element
	X int
	Y int
}

// Placements lists element origins in input order.
type Placements []Placement

// ByID maps element IDs to their placement. If IDs repeat, the last
// placement wins.
func (p Placements) ByID() map[string]Placement {
	m := make(map[string]Placement, len(p))
	for _, pl := range p {
		m[pl.ID] = pl
	}
	return m
}

// Place computes element origins by replaying the row membership in r.
//
// Within a row the cursor starts at originX and advances by the element
// width plus hSpacing. Each following row starts back at originX, one row
// height plus vSpacing further down. Row boundaries are taken from r and
// never recomputed from widths, so Place is consistent with the Pack call
// that produced r.
func Place(r Result, originX, originY, hSpacing, vSpacing int) Placements {
	out := make(Placements, 0, r.Len())
	y := originY
	for _, row := range r.Rows {
		x := originX
		for _, e := range row.Elements {
			out = append(out, Placement{Element: e, X: x, Y: y})
			x += e.Width + hSpacing
		}
		y += row.Height + vSpacing
	}
	return out
}
