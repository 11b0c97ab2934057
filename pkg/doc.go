// Package pkg provides the core libraries of Flowlane.
//
// # Overview
//
// Flowlane covers two small layout problems that share one rendering stack:
//
//  1. Flow packing: place rectangular elements left to right, wrapping to a
//     new row when the next element no longer fits the available width
//  2. Lane rows: draw one row of a revision graph as colored lane lines plus
//     the node circle, and stack rows into a full history diagram
//
// The pkg directory is organized as:
//
//  1. [core] - Domain logic (flow packing, lane rows, scenes and sinks)
//  2. [io] - JSON, YAML and TOML documents in, JSON layouts out
//  3. [pipeline] - Orchestration (layout → render) with artifact caching
//  4. [cache], [observability], [errors], [buildinfo] - Supporting code
//
// # Architecture
//
// The data flow through Flowlane:
//
//	Flow document                Graph document
//	      ↓                            ↓
//	[core/flow] Measure          [core/lanes] Row + Render
//	      ↓                            ↓
//	[core/render/boxes]          [core/render/graph]
//	      ↘                            ↙
//	         [core/render] Scene
//	                ↓
//	   [core/render/sink] SVG / PNG (+ PDF, JSON)
//
// # Quick Start
//
// Draw a single lane row:
//
//	import (
//	    "github.com/matzehuels/flowlane/pkg/core/lanes"
//	)
//
//	row := lanes.NewRow(1)
//	row.AddChildLane(0)
//	row.AddParentLane(2)
//	row.SetPassing(3)
//
//	ops := lanes.Render(row, lanes.NewGeometry(30, 3, 1))
//
// Pack elements into rows:
//
//	l := flow.New(flow.WithSpacing(4, 4))
//	m := l.Measure(children, flow.Constraints{Width: flow.AtMostSize(320), Height: flow.NoBound()})
//
// # Main Packages
//
// [core/flow] - Greedy row packing with the overflow-of-one rule, measure
// constraints and placement.
//
// [core/lanes] - Lane palette, row state and the per-row draw operations.
//
// [core/render] - Backend-neutral scenes, SVG and PNG sinks, PDF conversion.
//
// [pipeline] - The Runner behind the CLI: validation, layout, rendering and
// caching of rendered artifacts.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core
// [core/flow]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/flow
// [core/lanes]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/lanes
// [core/render]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/render
// [core/render/boxes]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/render/boxes
// [core/render/graph]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/render/graph
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/core/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flowlane/pkg/buildinfo
package pkg
