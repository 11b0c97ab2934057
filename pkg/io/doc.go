// Package io reads flow and lane-graph documents and writes layout results
// as JSON.
//
// # Input Formats
//
// Documents are decoded by file extension:
//
//   - .json: encoding/json
//   - .yaml, .yml: gopkg.in/yaml.v3
//   - .toml: github.com/BurntSushi/toml (unknown keys are rejected)
//
// # Flow Documents
//
// A flow document describes a wrapping container and its elements:
//
//	width: 320
//	width_mode: at_most
//	padding: {left: 8, top: 8, right: 8, bottom: 8}
//	horizontal_spacing: 6
//	elements:
//	  - {id: go, width: 40, height: 20}
//	  - {id: concurrency, width: 110, height: 20}
//	  - {id: banner, width: 10, height: 30, layout_width: match_parent}
//	  - {id: draft, width: 50, height: 20, gone: true}
//
// Element width and height are the intrinsic content size. layout_width and
// layout_height accept match_parent, wrap_content (the default) or a pixel
// size. An axis with no mode is at_most when it has a size and unbounded
// when it does not.
//
// # Graph Documents
//
// A graph document lists one entry per row of a revision graph, top to
// bottom, with lanes already assigned:
//
//	{
//	  "row_height": 24,
//	  "palette": ["#0099CC", "#9933CC"],
//	  "rows": [
//	    {"lane": 0, "parents": [0, 1]},
//	    {"lane": 1, "children": [0], "parents": [1], "passing": [0]},
//	    {"lane": 0, "children": [0, 1]}
//	  ]
//	}
//
// Children and parents are listed in the order they were added to the row.
// [GraphDocument.BuildRows] replays them through [lanes.Row.AddChildLane] and
// [lanes.Row.AddParentLane], so they are drawn most recent first. Negative
// lanes are rejected with an INVALID_LANE error.
//
// # Export
//
// [WriteFlowJSON] and [WriteGraphJSON] write computed geometry for external
// consumers: element origins for flows, draw primitives for graphs.
package io
