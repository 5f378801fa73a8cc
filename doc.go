// Package voronoi builds a planar Voronoi diagram from a finite set of
// two-dimensional sites using Fortune's sweep-line algorithm, and locates
// the largest empty circle(s) centered at one of its vertices.
//
// # Overview
//
// The sweep line travels left to right across increasing x. A beachline of
// parabolic arcs records which site is currently closest to the sweep line
// at every y, and two event queues (site events and circle events) drive
// arc insertion and removal. Processing a full site set yields a set of
// line segments (the Voronoi edges) and a set of vertices (points
// equidistant from three or more sites); a post-pass over those vertices
// finds the one(s) farthest from every site, i.e. the largest circle
// centered at a Voronoi vertex whose interior contains no site.
//
// # Scope
//
// This package does not clip edges to an arbitrary polygon, does not build
// face/cell topology, does not produce a Delaunay triangulation as a
// first-class output, and does not use exact arithmetic predicates: it
// operates in ordinary float64 and can degrade on exactly cocircular or
// collinear input. Perturbing input coordinates by a tiny amount before
// construction (see [Perturb]) is the documented mitigation.
//
// # Usage
//
//	v, err := voronoi.New(sites)
//	if err != nil { ... }
//	if err := v.Process(); err != nil { ... }
//	segments := v.Segments()
//	vertices := v.VoronoiVertices()
//	circles, err := v.FindLargestEmptyCircle()
package voronoi
