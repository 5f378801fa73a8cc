package voronoi

import "math/rand"

// perturbEpsilon is the unit of the y-jitter Perturb applies; Perturb
// scales it by a small random integer per point.
const perturbEpsilon = 1e-9

// Perturb returns a copy of sites with a tiny y-jitter applied to each
// point, to break exact cocircularity or collinearity before
// construction. It never mutates sites and is never applied by New or
// Process themselves — callers opt in explicitly, per §6.
//
// The jitter at index i is perturbEpsilon * k for a random k in
// [1, i+1], following the reference mitigation of scaling the jitter's
// upper bound by a point's position in the input sequence.
func Perturb(sites []Point, rng *rand.Rand) []Point {
	out := make([]Point, len(sites))
	for i, p := range sites {
		k := rng.Intn(i+1) + 1
		out[i] = Point{X: p.X, Y: p.Y + perturbEpsilon*float64(k)}
	}
	return out
}
