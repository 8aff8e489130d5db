/*
 * boundary.go, part of biostruct.
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

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a sphere in 3D space
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Gap returns the distance between the surfaces of the spheres, which is
// negative if they overlap.
func (S Sphere) Gap(o Sphere) float64 {
	return r3.Norm(r3.Sub(S.Center, o.Center)) - S.Radius - o.Radius
}

// Boundary is the axis-aligned bounding box of a point set, and the sphere centered
// on the box center that contains all the points.
type Boundary struct {
	Box    r3.Box
	Sphere Sphere
	Empty  bool
}

// BoundaryOf returns the boundary of the positions.
func BoundaryOf(positions []r3.Vec) Boundary {
	if len(positions) == 0 {
		return Boundary{Empty: true}
	}
	min := positions[0]
	max := positions[0]
	for _, v := range positions[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		min.Z = math.Min(min.Z, v.Z)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
		max.Z = math.Max(max.Z, v.Z)
	}
	center := r3.Scale(0.5, r3.Add(min, max))
	r2 := 0.0
	for _, v := range positions {
		d := r3.Sub(v, center)
		r2 = math.Max(r2, r3.Dot(d, d))
	}
	return Boundary{
		Box:    r3.Box{Min: min, Max: max},
		Sphere: Sphere{Center: center, Radius: math.Sqrt(r2)},
	}
}

// Contains returns true if p is inside the bounding box.
func (B Boundary) Contains(p r3.Vec) bool {
	if B.Empty {
		return false
	}
	return p.X >= B.Box.Min.X && p.X <= B.Box.Max.X &&
		p.Y >= B.Box.Min.Y && p.Y <= B.Box.Max.Y &&
		p.Z >= B.Box.Min.Z && p.Z <= B.Box.Max.Z
}
