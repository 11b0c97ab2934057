package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/flowlane/pkg/core/lanes"
)

// Shape is one drawable item of a [Scene]: a [Line], [Circle] or [Rect].
type Shape interface {
	isShape()
}

// Line is a straight stroke with round caps.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          colorful.Color
}

// Circle is a filled disc.
type Circle struct {
	CX, CY, R float64
	Color     colorful.Color
}

// Rect is an outlined, filled box with an optional centered label.
type Rect struct {
	ID          string
	X, Y, W, H  float64
	Fill        colorful.Color
	Stroke      colorful.Color
	StrokeWidth float64
	Label       string
}

func (Line) isShape()   {}
func (Circle) isShape() {}
func (Rect) isShape()   {}

// Scene is a frame and the shapes painted into it, back to front.
type Scene struct {
	Width      float64
	Height     float64
	Background *colorful.Color // nil leaves the frame transparent
	Shapes     []Shape
}

// Add appends shapes on top of the existing ones.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddOps appends lane draw ops, shifted down by dy, preserving their order.
func (s *Scene) AddOps(ops []lanes.Op, dy float64) {
	for _, op := range ops {
		switch op := op.(type) {
		case lanes.Line:
			s.Shapes = append(s.Shapes, Line{
				X1: op.From.X, Y1: op.From.Y + dy,
				X2: op.To.X, Y2: op.To.Y + dy,
				Width: op.Width,
				Color: op.Color,
			})
		case lanes.Circle:
			s.Shapes = append(s.Shapes, Circle{
				CX: op.Center.X, CY: op.Center.Y + dy,
				R:     op.Radius,
				Color: op.Color,
			})
		}
	}
}

// Counts returns the number of lines, circles and rects in the scene.
func (s *Scene) Counts() (lines, circles, rects int) {
	for _, sh := range s.Shapes {
		switch sh.(type) {
		case Line:
			lines++
		case Circle:
			circles++
		case Rect:
			rects++
		}
	}
	return lines, circles, rects
}
