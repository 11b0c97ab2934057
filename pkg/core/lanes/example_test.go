package lanes_test

import (
	"fmt"

	"github.com/matzehuels/flowlane/pkg/core/lanes"
)

func ExampleRender() {
	row := lanes.NewRow(1)
	row.AddChildLane(3)
	row.AddParentLane(1)
	row.SetPassing(3)

	g := lanes.NewGeometry(30, lanes.DefaultRadius, 1)
	for _, op := range lanes.Render(row, g) {
		switch op := op.(type) {
		case lanes.Line:
			fmt.Printf("line (%.0f,%.0f)->(%.0f,%.0f) %s\n", op.From.X, op.From.Y, op.To.X, op.To.Y, op.Color.Hex())
		case lanes.Circle:
			fmt.Printf("circle (%.0f,%.0f) r=%.0f %s\n", op.Center.X, op.Center.Y, op.Radius, op.Color.Hex())
		}
	}
	// Output:
	// line (12,15)->(12,0) #9933cc
	// line (12,15)->(12,30) #9933cc
	// line (24,0)->(24,30) #ff8800
	// circle (12,15) r=3 #9933cc
}

func ExamplePalette_Color() {
	p := lanes.DefaultPalette()
	fmt.Println(p.Color(2) == p.Color(7))
	// Output: true
}
