// Package flow packs rectangular elements into wrapped rows.
//
// # Overview
//
// Flow layout arranges a sequence of elements left to right. When the next
// element would push the current row past the available width, the row is
// closed and a new one starts below it. Elements are never reordered.
//
// Layout is split into two phases that must run against the same constraint
// snapshot:
//
//  1. [Pack] (measure): assign every element to a row and compute the
//     content size.
//  2. [Place]: replay the row membership computed by [Pack] and assign an
//     origin to every element.
//
// [Place] never re-derives wrap decisions from raw widths. Pass it the
// [Result] produced by [Pack]; rows are taken verbatim.
//
// # Overflow
//
// A row that holds no element can never overflow, so an element wider than
// the bound is always placed alone on its own row. Packing therefore always
// terminates and always produces a result.
//
// # Host Integration
//
// [Layout] plays the role of the container widget: it derives per-child
// [Constraints] from the parent's, asks each [Measurable] child for its size,
// subtracts padding before packing and adds it back afterwards:
//
//	l := flow.New(flow.WithSpacing(5, 5), flow.WithPadding(flow.Padding{Left: 8}))
//	m := l.Measure(children, flow.Constraints{
//	    Width:  flow.AtMostSize(320),
//	    Height: flow.NoBound(),
//	})
//	for _, p := range m.Place() {
//	    fmt.Println(p.ID, p.X, p.Y)
//	}
package flow
