package voronoi

import "github.com/reikathr/fortunes-geokom/numeric"

// CircleEvent records a predicted beachline collapse: three consecutive
// arcs whose foci make a right turn and whose circumcircle's rightmost x
// (X) lies ahead of the bounding box's left edge. Valid is cleared when
// Arc's neighborhood changes before the event fires.
type CircleEvent struct {
	X      float64
	Center Point
	Arc    *Arc
	Valid  bool
}

// handleSiteEvent processes the site event for p, whose x equals the
// current sweep position. It installs p as the beachline's sole arc, or
// walks the beachline looking for the arc p's vertical line intersects
// and splits it there, or, in the all-sites-share-x degenerate case,
// appends p as a new tail arc.
func (v *Voronoi) handleSiteEvent(p Point) error {
	if v.beachline.IsEmpty() {
		v.beachline.insertSole(p)
		return nil
	}

	for i := v.beachline.head; i != nil; i = i.pnext {
		hit, z, err := arcIntersection(i, p, v.opts.Epsilon)
		if err != nil {
			return err
		}
		if hit {
			return v.splitArc(i, p, z)
		}
	}

	return v.appendTailArc(p)
}

// splitArc handles the case where p's vertical line hits arc i at z: i is
// cloned, p is inserted as a new arc between i and the clone, and both
// sides of the split are wired to fresh segments starting at z.
func (v *Voronoi) splitArc(i *Arc, p, z Point) error {
	clone := &Arc{Focus: i.Focus}

	nextAlsoHits := false
	if i.pnext != nil {
		hit, _, err := arcIntersection(i.pnext, p, v.opts.Epsilon)
		if err != nil {
			return err
		}
		nextAlsoHits = hit
	}

	if i.pnext != nil && !nextAlsoHits {
		linkAfter(i, clone)
	} else {
		appendDisconnected(i, clone)
	}
	clone.s1 = i.s1

	newArc := &Arc{Focus: p}
	linkAfter(i, newArc)

	left := NewSegment(z)
	v.segments = append(v.segments, left)
	newArc.pprev.s1 = left
	newArc.s0 = left

	right := NewSegment(z)
	v.segments = append(v.segments, right)
	newArc.s1 = right
	newArc.pnext.s0 = right

	if err := v.checkCircleEvent(newArc); err != nil {
		return err
	}
	if err := v.checkCircleEvent(newArc.pprev); err != nil {
		return err
	}
	if err := v.checkCircleEvent(newArc.pnext); err != nil {
		return err
	}
	return nil
}

// appendTailArc handles the degenerate case where p's vertical line hit
// no existing arc (every site seen so far shares p's x). p is appended
// as a new tail arc with a seed segment starting at the bounding box's
// left edge; no circle events are possible from a bare tail append.
func (v *Voronoi) appendTailArc(p Point) error {
	tail := v.beachline.head
	for tail.pnext != nil {
		tail = tail.pnext
	}

	newArc := &Arc{Focus: p}
	appendDisconnected(tail, newArc)

	y := (tail.Focus.Y + p.Y) / 2.0
	seg := NewSegment(Point{X: v.x0, Y: y})
	v.segments = append(v.segments, seg)
	tail.s1 = seg
	newArc.s0 = seg
	return nil
}

// checkCircleEvent recomputes arc i's pending circle event, if any.
//
// Preserved exactly as designed: an existing pending event is
// invalidated only when its scheduled x differs from the bounding box's
// left edge x0 — not from the current sweep position — and the new
// event's threshold test also compares against x0. See the package
// design notes for why this is kept rather than "fixed" to the current
// sweep x.
func (v *Voronoi) checkCircleEvent(i *Arc) error {
	if i.ce != nil {
		if i.ce.X != v.x0 {
			i.ce.Valid = false
		}
		v.circleQueue.Invalidate(i)
		i.ce = nil
	}

	if i.pprev == nil || i.pnext == nil {
		return nil
	}

	center, x, ok := circumcircle(i.pprev.Focus, i.Focus, i.pnext.Focus, v.opts.Epsilon)
	if !ok {
		return nil
	}
	if numeric.FloatGreaterThan(x, v.x0, v.opts.Epsilon) {
		ce := &CircleEvent{X: x, Center: center, Arc: i, Valid: true}
		i.ce = ce
		v.circleQueue.Push(i, x, ce)
		logDebugf("[circle] scheduled x=%g center=%s arc-focus=%s", x, center, i.Focus)
	}
	return nil
}

// handleCircleEvent processes circle event e: emits a Voronoi vertex and
// a new segment at e's circumcenter, removes e's target arc from the
// beachline, finishes the edges that bounded it, and rechecks circle
// events on its former neighbors.
func (v *Voronoi) handleCircleEvent(e *CircleEvent) error {
	if !e.Valid {
		return nil
	}

	seg := NewSegment(e.Center)
	v.segments = append(v.segments, seg)
	v.voronoiVertices = append(v.voronoiVertices, e.Center)

	arc := e.Arc
	v.beachline.remove(arc, seg)

	if arc.s0 != nil {
		arc.s0.Finish(e.Center)
	}
	if arc.s1 != nil {
		arc.s1.Finish(e.Center)
	}

	if arc.pprev != nil {
		if err := v.checkCircleEvent(arc.pprev); err != nil {
			return err
		}
	}
	if arc.pnext != nil {
		if err := v.checkCircleEvent(arc.pnext); err != nil {
			return err
		}
	}
	return nil
}
