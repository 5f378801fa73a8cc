package voronoi

import (
	"fmt"

	"github.com/reikathr/fortunes-geokom/options"
)

// Voronoi builds the Voronoi diagram of a fixed set of sites. A value is
// single-use: Process runs the sweep exactly once.
type Voronoi struct {
	sites []Point

	x0, y0, x1, y1 float64

	beachline       Beachline
	segments        []*Segment
	voronoiVertices []Point

	siteQueue   *EventQueue[*Point, Point]
	circleQueue *EventQueue[*Arc, *CircleEvent]

	opts options.Options

	processed bool
}

// New constructs a Voronoi builder over sites. It computes the extended
// bounding box (seed, site-driven expansion, 20% padding) and seeds the
// site-event queue. It returns ErrInputEmpty if sites is empty.
func New(sites []Point, optFuncs ...options.Func) (*Voronoi, error) {
	if len(sites) == 0 {
		return nil, ErrInputEmpty
	}

	opts := options.Apply(optFuncs...)

	v := &Voronoi{
		sites:       append([]Point(nil), sites...),
		siteQueue:   NewEventQueue[*Point, Point](),
		circleQueue: NewEventQueue[*Arc, *CircleEvent](),
		opts:        opts,
	}

	v.computeBoundingBox()
	detectDuplicates(v.sites, opts.Epsilon)

	for i := range v.sites {
		p := v.sites[i]
		key := &v.sites[i]
		v.siteQueue.Push(key, p.X, p)
	}

	logDebugf("[init] %d sites, box=(%g,%g)-(%g,%g)", len(v.sites), v.x0, v.y0, v.x1, v.y1)
	return v, nil
}

// computeBoundingBox implements §6's box: a fixed asymmetric seed,
// expanded to cover every site, then padded by 20% of each span on
// every side. The seed's asymmetry (x seeded as if for a min/min
// reduction, y as if for a max/max one) is preserved as specified.
func (v *Voronoi) computeBoundingBox() {
	v.x0, v.x1 = -50, -50
	v.y0, v.y1 = 550, 550

	for _, p := range v.sites {
		if p.X < v.x0 {
			v.x0 = p.X
		}
		if p.X > v.x1 {
			v.x1 = p.X
		}
		if p.Y < v.y0 {
			v.y0 = p.Y
		}
		if p.Y > v.y1 {
			v.y1 = p.Y
		}
	}

	dx := (v.x1 - v.x0 + 1) / 5
	dy := (v.y1 - v.y0 + 1) / 5
	v.x0 -= dx
	v.x1 += dx
	v.y0 -= dy
	v.y1 += dy
}

// Process runs the sweep to completion. A second call returns
// ErrAlreadyProcessed. Internal invariant-failure panics (an empty pop
// from a queue the driver's own bookkeeping guarantees is non-empty) are
// recovered here and returned as a plain error, so callers never observe
// a panic crossing this boundary.
func (v *Voronoi) Process() (err error) {
	if v.processed {
		return ErrAlreadyProcessed
	}

	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			err = fmt.Errorf("voronoi: %v", r)
		}
	}()

	for !v.siteQueue.Empty() {
		runCircle := false
		if !v.circleQueue.Empty() {
			cPeek, _ := v.circleQueue.Peek()
			sPeek, _ := v.siteQueue.Peek()
			if cPeek.X <= sPeek.X {
				runCircle = true
			}
		}

		if runCircle {
			ce := v.circleQueue.MustPop()
			logDebugf("[sweep] circle event x=%g", ce.X)
			if err := v.handleCircleEvent(ce); err != nil {
				return err
			}
			continue
		}

		p := v.siteQueue.MustPop()
		logDebugf("[sweep] site event x=%g y=%g", p.X, p.Y)
		if err := v.handleSiteEvent(p); err != nil {
			return err
		}
	}

	for !v.circleQueue.Empty() {
		ce := v.circleQueue.MustPop()
		logDebugf("[sweep] draining circle event x=%g", ce.X)
		if err := v.handleCircleEvent(ce); err != nil {
			return err
		}
	}

	if err := v.finishEdges(); err != nil {
		return err
	}

	v.processed = true
	return nil
}

// finishEdges extends every still-unfinished outgoing edge to the
// breakpoint with its next neighbor at sweep x = 2l, where
// l = x1 + (x1 - x0) + (y1 - y0) is far beyond the bounding box, per
// §4.7.
func (v *Voronoi) finishEdges() error {
	l := v.x1 + (v.x1 - v.x0) + (v.y1 - v.y0)

	for a := v.beachline.head; a != nil && a.pnext != nil; a = a.pnext {
		if a.s1 == nil {
			continue
		}
		z, err := breakpoint(a.Focus, a.pnext.Focus, 2*l)
		if err != nil {
			return err
		}
		a.s1.Finish(z)
	}
	return nil
}

// Segments returns the segment set in creation order. A finished
// segment contributes its two endpoints; an unfinished one contributes
// its start point twice. Start is a value, so every segment has one and
// none is filtered out.
func (v *Voronoi) Segments() []LineSegment {
	out := make([]LineSegment, 0, len(v.segments))
	for _, s := range v.segments {
		end := s.Start
		if s.End != nil {
			end = *s.End
		}
		out = append(out, LineSegment{Start: s.Start, End: end})
	}
	return out
}

// VoronoiVertices returns the Voronoi vertices in event order.
func (v *Voronoi) VoronoiVertices() []Point {
	out := make([]Point, len(v.voronoiVertices))
	copy(out, v.voronoiVertices)
	return out
}

// LineSegment is a materialized (possibly degenerate) segment endpoint
// pair, the public form of an internal Segment.
type LineSegment struct {
	Start Point
	End   Point
}
