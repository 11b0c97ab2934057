package lanes

import "slices"

// Row is the lane assignment of one commit row.
//
// The zero value is an empty row on lane 0. Child and parent lanes are kept
// most-recently-added-first: every Add call inserts at the front, and
// [Render] draws them in that order. Passing lanes form a set that is
// replaced wholesale per row.
type Row struct {
	lane     int
	children []int
	parents  []int
	passing  map[int]struct{}
}

// NewRow returns an empty row whose commit sits on lane.
func NewRow(lane int) *Row {
	return &Row{lane: lane}
}

// Lane returns the commit's own lane.
func (r *Row) Lane() int { return r.lane }

// SetLane moves the commit to lane.
func (r *Row) SetLane(lane int) { r.lane = lane }

// AddChildLane records an edge up to a child on lane. It is drawn before
// every child edge added earlier.
func (r *Row) AddChildLane(lane int) {
	r.children = slices.Insert(r.children, 0, lane)
}

// AddParentLane records an edge down to a parent on lane. It is drawn
// before every parent edge added earlier.
func (r *Row) AddParentLane(lane int) {
	r.parents = slices.Insert(r.parents, 0, lane)
}

// ClearLanes empties the child and parent lists. The commit lane and the
// passing set are left alone.
func (r *Row) ClearLanes() {
	r.children = r.children[:0]
	r.parents = r.parents[:0]
}

// SetPassing replaces the passing set with lanes.
func (r *Row) SetPassing(lanes ...int) {
	r.passing = make(map[int]struct{}, len(lanes))
	for _, l := range lanes {
		r.passing[l] = struct{}{}
	}
}

// Children returns the child lanes in draw order.
func (r *Row) Children() []int { return slices.Clone(r.children) }

// Parents returns the parent lanes in draw order.
func (r *Row) Parents() []int { return slices.Clone(r.parents) }

// Passing returns the passing lanes in ascending order.
func (r *Row) Passing() []int {
	out := make([]int, 0, len(r.passing))
	for l := range r.passing {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// IsPassing reports whether lane is occupied by a passing lane.
func (r *Row) IsPassing(lane int) bool {
	_, ok := r.passing[lane]
	return ok
}

// Effective returns the lane an edge towards lane is drawn through: the
// commit's own lane if lane is passing, lane itself otherwise.
func (r *Row) Effective(lane int) int {
	if r.IsPassing(lane) {
		return r.lane
	}
	return lane
}

// MaxLane returns the highest lane referenced by the row.
func (r *Row) MaxLane() int {
	m := r.lane
	for _, l := range r.children {
		m = max(m, l)
	}
	for _, l := range r.parents {
		m = max(m, l)
	}
	for l := range r.passing {
		m = max(m, l)
	}
	return m
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	c := &Row{
		lane:     r.lane,
		children: slices.Clone(r.children),
		parents:  slices.Clone(r.parents),
	}
	if r.passing != nil {
		c.passing = make(map[int]struct{}, len(r.passing))
		for l := range r.passing {
			c.passing[l] = struct{}{}
		}
	}
	return c
}
