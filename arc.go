package voronoi

import "github.com/reikathr/fortunes-geokom/numeric"

// Arc is one contiguous piece of the beachline, associated with a single
// focus site. While present in the beachline, pprev/pnext form a
// consistent doubly linked list; s0/s1 reference the (possibly
// unfinished) segments bounding the arc on its left and right, and ce
// holds the arc's pending circle event, if any.
type Arc struct {
	Focus Point
	pprev *Arc
	pnext *Arc
	s0    *Segment
	s1    *Segment
	ce    *CircleEvent
}

// Beachline is the ordered, top-to-bottom (at the current sweep x)
// sequence of arcs, represented as a doubly linked list reachable from
// head. All traversals are linear in the current beachline length.
type Beachline struct {
	head *Arc
}

// IsEmpty reports whether the beachline has no arcs yet.
func (bl *Beachline) IsEmpty() bool {
	return bl.head == nil
}

// insertSole installs p as the beachline's only arc. Used only when the
// beachline is empty.
func (bl *Beachline) insertSole(p Point) *Arc {
	a := &Arc{Focus: p}
	bl.head = a
	return a
}

// linkAfter splices n into the list immediately after prev, preserving
// whatever followed prev.
func linkAfter(prev, n *Arc) {
	n.pprev = prev
	n.pnext = prev.pnext
	if prev.pnext != nil {
		prev.pnext.pprev = n
	}
	prev.pnext = n
}

// appendDisconnected attaches n after prev without regard to whatever
// arc, if any, previously followed prev: prev.pnext is overwritten and the
// old successor (if it existed) is left with a stale pprev. This mirrors
// the site-event handler's tail-clone behavior when a neighbor arc also
// intersects the incoming site (see handleSiteEvent).
func appendDisconnected(prev, n *Arc) {
	n.pprev = prev
	n.pnext = nil
	prev.pnext = n
}

// remove unlinks a from the beachline, wiring its neighbors' boundary
// segments to seg. The caller is responsible for finishing a.s0/a.s1 at
// the emitted vertex.
func (bl *Beachline) remove(a *Arc, seg *Segment) {
	if a.pprev != nil {
		a.pprev.pnext = a.pnext
		a.pprev.s1 = seg
	}
	if a.pnext != nil {
		a.pnext.pprev = a.pprev
		a.pnext.s0 = seg
	}
}

// arcIntersection reports whether the vertical line through p intersects
// arc i's y-range at sweep x = p.X, and if so, the point at which it does.
//
// The y-range is bounded by the breakpoints with i's previous and next
// neighbors (a missing neighbor removes that bound); p.Y must lie within
// [lower, upper] (open ends where a bound is absent, compared within
// epsilon so a point that lands exactly on a breakpoint still counts as a
// hit) for a hit.
func arcIntersection(i *Arc, p Point, epsilon float64) (hit bool, z Point, err error) {
	if i == nil || i.Focus.X == p.X {
		return false, Point{}, nil
	}

	var hasLower, hasUpper bool
	var lower, upper float64

	if i.pprev != nil {
		b, bErr := breakpoint(i.pprev.Focus, i.Focus, p.X)
		if bErr != nil {
			return false, Point{}, bErr
		}
		lower, hasLower = b.Y, true
	}
	if i.pnext != nil {
		b, bErr := breakpoint(i.Focus, i.pnext.Focus, p.X)
		if bErr != nil {
			return false, Point{}, bErr
		}
		upper, hasUpper = b.Y, true
	}

	lowerOK := !hasLower || numeric.FloatLessThanOrEqualTo(lower, p.Y, epsilon)
	upperOK := !hasUpper || numeric.FloatLessThanOrEqualTo(p.Y, upper, epsilon)
	if lowerOK && upperOK {
		denom := 2*i.Focus.X - 2*p.X
		px := (i.Focus.X*i.Focus.X + (i.Focus.Y-p.Y)*(i.Focus.Y-p.Y) - p.X*p.X) / denom
		return true, Point{X: px, Y: p.Y}, nil
	}
	return false, Point{}, nil
}
