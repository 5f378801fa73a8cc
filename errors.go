package voronoi

import "errors"

// ErrInputEmpty is returned by New when no sites are provided.
var ErrInputEmpty = errors.New("voronoi: no sites provided")

// ErrNumericDegeneracy is wrapped into errors returned by the parabola
// intersection (breakpoint) when finite-precision arithmetic hits a
// condition it cannot resolve: division by zero or a negative
// discriminant. The circumcircle predicate does not return it; it reports
// a collinear or left-turn triple as "no circle" instead. It is not
// recovered internally; callers may retry with perturbed input (see
// [Perturb]).
var ErrNumericDegeneracy = errors.New("voronoi: numeric degeneracy")

// ErrQueuePopEmpty indicates an internal invariant failure (a pop against
// an empty event queue where the sweep driver believed one was non-empty).
// It signals a bug in the sweep driver, not a property of the input.
var ErrQueuePopEmpty = errors.New("voronoi: pop from empty event queue")

// ErrAlreadyProcessed is returned by Process when called a second time on
// the same builder. A Voronoi instance is single-use.
var ErrAlreadyProcessed = errors.New("voronoi: already processed")

// ErrNotProcessed is returned by FindLargestEmptyCircle when called before
// Process has completed.
var ErrNotProcessed = errors.New("voronoi: not processed")
