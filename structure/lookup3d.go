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

package structure

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/biostruct/geom"
)

// Location is an element of a structure, given as its unit and its position in the unit.
type Location struct {
	Unit  *Unit
	Index int
}

// Element returns the model index of the element.
func (L Location) Element() int {
	return L.Unit.elements[L.Index]
}

// LookupResult contains the elements found by a query, closest first.
type LookupResult struct {
	Locations        []Location
	SquaredDistances []float64
}

// Len returns the number of elements found.
func (R LookupResult) Len() int { return len(R.Locations) }

// Lookup3D answers proximity queries over the world-space positions of all the
// elements of a structure.
type Lookup3D struct {
	lookup *geom.Lookup3D
	locs   []Location
}

func newLookup3D(s *Structure) *Lookup3D {
	pos := make([]r3.Vec, 0, s.elementCount)
	locs := make([]Location, 0, s.elementCount)
	for _, u := range s.units {
		for i := range u.elements {
			pos = append(pos, u.Position(i))
			locs = append(locs, Location{Unit: u, Index: i})
		}
	}
	return &Lookup3D{lookup: geom.NewLookup3D(pos), locs: locs}
}

// Find returns the elements within radius of p.
func (L *Lookup3D) Find(p r3.Vec, radius float64) LookupResult {
	r := L.lookup.Find(p, radius)
	ret := LookupResult{Locations: make([]Location, r.Len()), SquaredDistances: r.SquaredDistances}
	for i, idx := range r.Indices {
		ret.Locations[i] = L.locs[idx]
	}
	return ret
}

// Check returns true if at least one element is within radius of p.
func (L *Lookup3D) Check(p r3.Vec, radius float64) bool {
	return L.lookup.Check(p, radius)
}

// Nearest returns the element closest to p and its distance. It returns false if the
// structure has no elements.
func (L *Lookup3D) Nearest(p r3.Vec) (Location, float64, bool) {
	i, d, ok := L.lookup.Nearest(p)
	if !ok {
		return Location{}, 0, false
	}
	return L.locs[i], d, true
}

// Boundary returns the boundary of all the elements.
func (L *Lookup3D) Boundary() geom.Boundary {
	return L.lookup.Boundary()
}
