package voronoi

import (
	"fmt"
	"math"

	"github.com/reikathr/fortunes-geokom/numeric"
)

// Point is a site or derived coordinate in the plane. Once created it is
// never mutated; all operations below return new values.
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a Point with the given coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// breakpoint returns the lower intersection of the two parabolas with foci
// p0 and p1 and directrix the vertical sweep line x = l. This is the
// breakpoint between two adjacent beachline arcs.
//
// Policy:
//   - equal-x foci: the intersection's y is the midpoint of the two foci's y.
//   - a focus lying on the sweep line directrix: the intersection is that
//     focus's y (its parabola degenerates to a vertical line).
//   - otherwise, solve the quadratic implied by equal distance to focus and
//     directrix, taking the root that gives the lower breakpoint.
//
// The resulting y is back-substituted into the chosen focus's parabola
// equation to get x.
func breakpoint(p0, p1 Point, l float64) (Point, error) {
	focus := p0
	var py float64

	switch {
	case p0.X == p1.X:
		py = (p0.Y + p1.Y) / 2.0
	case p1.X == l:
		py = p1.Y
	case p0.X == l:
		py = p0.Y
		focus = p1
	default:
		z0 := 2.0 * (p0.X - l)
		z1 := 2.0 * (p1.X - l)
		a := 1.0/z0 - 1.0/z1
		b := -2.0 * (p0.Y/z0 - p1.Y/z1)
		c := (p0.Y*p0.Y+p0.X*p0.X-l*l)/z0 - (p1.Y*p1.Y+p1.X*p1.X-l*l)/z1

		if a == 0 {
			return Point{}, fmt.Errorf("breakpoint: degenerate quadratic between %s and %s at l=%g: %w", p0, p1, l, ErrNumericDegeneracy)
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			return Point{}, fmt.Errorf("breakpoint: negative discriminant between %s and %s at l=%g: %w", p0, p1, l, ErrNumericDegeneracy)
		}
		py = (-b - math.Sqrt(disc)) / (2 * a)
	}

	denom := 2*focus.X - 2*l
	if denom == 0 {
		return Point{}, fmt.Errorf("breakpoint: focus %s lies on sweep line l=%g: %w", focus, l, ErrNumericDegeneracy)
	}
	px := (focus.X*focus.X + (focus.Y-py)*(focus.Y-py) - l*l) / denom
	return Point{X: px, Y: py}, nil
}

// circumcircle computes the circle through a, b, c in that winding order.
//
// It rejects left-turn (and, within epsilon, collinear) triples outright:
// under this package's beachline convention (sweep increasing in x), only a
// right turn can ever collapse to a circle event as the sweep progresses.
// The center is solved with the classic O'Rourke 2x2 construction, then
// snapped toward whole numbers within epsilon to mask the residue that
// finite-precision arithmetic tends to leave behind; x is the rightmost
// point of the circle, i.e. the x at which the sweep line becomes tangent
// to it from the left.
func circumcircle(a, b, c Point, epsilon float64) (center Point, x float64, ok bool) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if !numeric.FloatLessThan(cross, 0, epsilon) {
		return Point{}, 0, false
	}

	A := b.X - a.X
	B := b.Y - a.Y
	C := c.X - a.X
	D := c.Y - a.Y
	E := A*(a.X+b.X) + B*(a.Y+b.Y)
	F := C*(a.X+c.X) + D*(a.Y+c.Y)
	G := 2 * cross

	if numeric.FloatEquals(G, 0, epsilon) {
		return Point{}, 0, false
	}

	ox := numeric.SnapToEpsilon((D*E-B*F)/G, epsilon)
	oy := numeric.SnapToEpsilon((A*F-C*E)/G, epsilon)
	center = Point{X: ox, Y: oy}
	x = ox + a.DistanceTo(center)
	return center, x, true
}
