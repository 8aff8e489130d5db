/*
 * lookup3d.go, part of biostruct.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * biostruct is developed at Universidad de Tarapaca (UTA)
 *
 */

// Package geom contains the spatial lookups used by biostruct: a kd-tree
// over a fixed set of points, and the bounding volumes of point sets.
package geom

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// point is a position with the index it was given at.
type point struct {
	r3.Vec
	index int
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	case 2:
		return p.Z - q.Z
	}
	panic("geom: illegal dimension")
}

func (p point) Dims() int { return 3 }

// Distance returns the squared distance, as the tree expects.
func (p point) Distance(c kdtree.Comparable) float64 {
	d := r3.Sub(p.Vec, c.(point).Vec)
	return r3.Dot(d, d)
}

type points []point

func (p points) Index(i int) kdtree.Comparable { return p[i] }
func (p points) Len() int                      { return len(p) }
func (p points) Pivot(d kdtree.Dim) int {
	return plane{points: p, Dim: d}.Pivot()
}
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane sorts points along one dimension.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], p.Dim) < 0
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// Result is the answer of a radius query: the indexes of the points found and their
// squared distances to the query point, sorted by increasing distance.
type Result struct {
	Indices          []int
	SquaredDistances []float64
}

// Len returns the number of points in the result.
func (R Result) Len() int { return len(R.Indices) }

func (R Result) Less(i, j int) bool {
	if R.SquaredDistances[i] == R.SquaredDistances[j] {
		return R.Indices[i] < R.Indices[j]
	}
	return R.SquaredDistances[i] < R.SquaredDistances[j]
}

func (R Result) Swap(i, j int) {
	R.Indices[i], R.Indices[j] = R.Indices[j], R.Indices[i]
	R.SquaredDistances[i], R.SquaredDistances[j] = R.SquaredDistances[j], R.SquaredDistances[i]
}

// Lookup3D answers proximity queries over a fixed set of points. It can't be updated: a
// different set of points needs a new Lookup3D.
type Lookup3D struct {
	tree     *kdtree.Tree
	n        int
	boundary Boundary
}

// NewLookup3D builds a lookup over the positions. Results refer to the
// positions by their index in the slice. The slice is not retained.
func NewLookup3D(positions []r3.Vec) *Lookup3D {
	pts := make(points, len(positions))
	for i, v := range positions {
		pts[i] = point{Vec: v, index: i}
	}
	L := &Lookup3D{n: len(positions), boundary: BoundaryOf(positions)}
	if L.n > 0 {
		L.tree = kdtree.New(pts, false)
	}
	return L
}

// Len returns the number of points in the lookup
func (L *Lookup3D) Len() int { return L.n }

// Boundary returns the bounding box and sphere of all the points.
func (L *Lookup3D) Boundary() Boundary { return L.boundary }

// Find returns all the points within radius of p, the closest first.
func (L *Lookup3D) Find(p r3.Vec, radius float64) Result {
	var ret Result
	if L.n == 0 || radius < 0 {
		return ret
	}
	keep := kdtree.NewDistKeeper(radius * radius)
	L.tree.NearestSet(keep, point{Vec: p})
	ret.Indices = make([]int, 0, keep.Len())
	ret.SquaredDistances = make([]float64, 0, keep.Len())
	for _, c := range keep.Heap {
		//the keeper starts with a sentinel with no point.
		if c.Comparable == nil {
			continue
		}
		ret.Indices = append(ret.Indices, c.Comparable.(point).index)
		ret.SquaredDistances = append(ret.SquaredDistances, c.Dist)
	}
	sort.Sort(ret)
	return ret
}

// Check returns true if there is at least one point within radius of p.
func (L *Lookup3D) Check(p r3.Vec, radius float64) bool {
	if L.n == 0 || radius < 0 {
		return false
	}
	_, d := L.tree.Nearest(point{Vec: p})
	return d <= radius*radius
}

// Nearest returns the index of the point closest to p and its distance (not squared).
// It returns false if the lookup is empty.
func (L *Lookup3D) Nearest(p r3.Vec) (int, float64, bool) {
	if L.n == 0 {
		return -1, 0, false
	}
	c, d := L.tree.Nearest(point{Vec: p})
	return c.(point).index, math.Sqrt(d), true
}
