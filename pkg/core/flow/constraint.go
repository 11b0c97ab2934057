package flow

import (
	"fmt"
	"strconv"
)

// Mode describes how a size constraint binds one axis.
type Mode int

const (
	// Unbounded places no limit on the axis.
	Unbounded Mode = iota
	// AtMost allows any size up to the constraint size.
	AtMost
	// Exact requires the constraint size.
	Exact
)

var modeNames = map[Mode]string{
	Unbounded: "unbounded",
	AtMost:    "at_most",
	Exact:     "exact",
}

// String returns the mode name used in documents and flags.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "exact", "at_most" or "unbounded". An empty string is
// treated as "at_most", the usual mode for a wrapping container.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "exact":
		return Exact, nil
	case "", "at_most", "at-most", "atmost":
		return AtMost, nil
	case "unbounded":
		return Unbounded, nil
	}
	return Unbounded, fmt.Errorf("unknown constraint mode %q (must be exact, at_most or unbounded)", s)
}

// Constraint bounds one axis of a measurement.
type Constraint struct {
	Size int
	Mode Mode
}

// ExactSize returns a constraint requiring exactly n pixels.
func ExactSize(n int) Constraint { return Constraint{Size: n, Mode: Exact} }

// AtMostSize returns a constraint allowing up to n pixels.
func AtMostSize(n int) Constraint { return Constraint{Size: n, Mode: AtMost} }

// NoBound returns an unbounded constraint.
func NoBound() Constraint { return Constraint{Mode: Unbounded} }

// Bounded reports whether the constraint limits the axis. Wrapping is only
// enforced on a bounded width.
func (c Constraint) Bounded() bool { return c.Mode != Unbounded }

// Resolve picks the size a child with the given desired size ends up with.
func (c Constraint) Resolve(desired int) int {
	switch c.Mode {
	case Exact:
		return c.Size
	case AtMost:
		return min(desired, c.Size)
	}
	return desired
}

// Constraints holds the width and height constraints of one measure pass.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

// Dimension is a child's layout request along one axis: either a fixed
// pixel size (>= 0) or one of [MatchParent] and [WrapContent].
type Dimension int

const (
	// MatchParent asks for all of the space the parent has available.
	MatchParent Dimension = -1
	// WrapContent asks for the child's own size, bounded by the parent.
	WrapContent Dimension = -2
)

// ParseDimension parses "match_parent", "wrap_content" or a non-negative
// pixel size. An empty string is treated as "wrap_content".
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "", "wrap_content", "wrap":
		return WrapContent, nil
	case "match_parent", "match", "fill":
		return MatchParent, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid layout size %q (must be match_parent, wrap_content or a pixel size)", s)
	}
	return Dimension(n), nil
}

// String returns the document form of d.
func (d Dimension) String() string {
	switch d {
	case MatchParent:
		return "match_parent"
	case WrapContent:
		return "wrap_content"
	}
	return strconv.Itoa(int(d))
}

// ChildConstraint derives the constraint a child is measured with from its
// layout request, the parent's available size and the parent's mode.
//
//   - MatchParent: exactly the available size.
//   - WrapContent: at most the available size, or unbounded when the parent
//     itself is unbounded.
//   - A fixed size: exactly that size.
func ChildConstraint(request Dimension, available int, parent Mode) Constraint {
	available = max(available, 0)
	switch request {
	case MatchParent:
		return ExactSize(available)
	case WrapContent:
		if parent == Unbounded {
			return Constraint{Size: available, Mode: Unbounded}
		}
		return AtMostSize(available)
	}
	return ExactSize(int(request))
}
