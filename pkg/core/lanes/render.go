package lanes

import "github.com/lucasb-eyer/go-colorful"

// DefaultRadius is the node radius in density-independent units.
const DefaultRadius = 3.0

// Point is a position in pixels, origin at the row's top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry holds the pixel metrics of one row.
type Geometry struct {
	RowHeight  float64
	LaneUnit   float64 // horizontal distance between lane centers
	NodeRadius float64
}

// NewGeometry converts a node radius in density-independent units to
// pixels and derives the lane unit (twice the radius).
func NewGeometry(rowHeight, radius, density float64) Geometry {
	r := radius * density
	return Geometry{
		RowHeight:  rowHeight,
		LaneUnit:   2 * r,
		NodeRadius: r,
	}
}

// CenterX returns the x coordinate of a lane's center line.
func (g Geometry) CenterX(lane int) float64 {
	return float64(lane+1) * g.LaneUnit
}

// MidY returns the y coordinate of the node center.
func (g Geometry) MidY() float64 { return g.RowHeight / 2 }

// Width returns the width needed to draw lanes up to maxLane, leaving one
// lane unit of margin on each side.
func (g Geometry) Width(maxLane int) float64 {
	return float64(maxLane+2) * g.LaneUnit
}

// Op is a draw primitive. It is either a [Line] or a [Circle].
type Op interface {
	isOp()
}

// Line is a straight stroke.
type Line struct {
	From  Point
	To    Point
	Width float64
	Color colorful.Color
}

// Circle is a filled disc.
type Circle struct {
	Center Point
	Radius float64
	Color  colorful.Color
}

func (Line) isOp()   {}
func (Circle) isOp() {}

// style is the paint used for one Render call.
type style struct {
	palette     Palette
	strokeWidth float64
}

// Option configures a Render call.
type Option func(*style)

// WithPalette sets the lane palette.
func WithPalette(p Palette) Option {
	return func(s *style) { s.palette = p }
}

// WithStrokeWidth overrides the line width, which defaults to the node
// radius.
func WithStrokeWidth(w float64) Option {
	return func(s *style) { s.strokeWidth = w }
}

// Render returns the draw primitives for one row, in paint order:
//
//  1. one line per child lane, from the node up to the top edge;
//  2. one line per parent lane, from the node down to the bottom edge;
//  3. one vertical line per passing lane, top to bottom;
//  4. the node circle.
//
// Child and parent edges are drawn towards [Row.Effective] lanes and take
// the color of the effective lane. Passing lines always use their own lane
// and color.
func Render(r *Row, g Geometry, opts ...Option) []Op {
	s := style{palette: DefaultPalette(), strokeWidth: g.NodeRadius}
	for _, opt := range opts {
		opt(&s)
	}

	node := Point{X: g.CenterX(r.lane), Y: g.MidY()}
	passing := r.Passing()
	ops := make([]Op, 0, len(r.children)+len(r.parents)+len(passing)+1)

	for _, child := range r.children {
		lane := r.Effective(child)
		ops = append(ops, Line{
			From:  node,
			To:    Point{X: g.CenterX(lane), Y: 0},
			Width: s.strokeWidth,
			Color: s.palette.Color(lane),
		})
	}
	for _, parent := range r.parents {
		lane := r.Effective(parent)
		ops = append(ops, Line{
			From:  node,
			To:    Point{X: g.CenterX(lane), Y: g.RowHeight},
			Width: s.strokeWidth,
			Color: s.palette.Color(lane),
		})
	}
	for _, lane := range passing {
		x := g.CenterX(lane)
		ops = append(ops, Line{
			From:  Point{X: x, Y: 0},
			To:    Point{X: x, Y: g.RowHeight},
			Width: s.strokeWidth,
			Color: s.palette.Color(lane),
		})
	}
	ops = append(ops, Circle{
		Center: node,
		Radius: g.NodeRadius,
		Color:  s.palette.Color(r.lane),
	})
	return ops
}
