/*
 * geom_test.go, part of biostruct.
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLookup3D(Te *testing.T) {
	pos := []r3.Vec{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {Y: 5}}
	L := NewLookup3D(pos)
	assert.Equal(Te, 5, L.Len())
	r := L.Find(r3.Vec{X: 1.1}, 1.0)
	assert.Equal(Te, []int{1, 2}, r.Indices)
	assert.InDelta(Te, 0.01, r.SquaredDistances[0], 1e-12)
	assert.Equal(Te, 0, L.Find(r3.Vec{Z: 100}, 1).Len())
	assert.True(Te, L.Check(r3.Vec{Y: 4.5}, 0.5))
	assert.False(Te, L.Check(r3.Vec{Y: 4.5}, 0.4))
	i, d, ok := L.Nearest(r3.Vec{X: 2.9, Y: 0.1})
	require.True(Te, ok)
	assert.Equal(Te, 3, i)
	assert.InDelta(Te, 0.141421356, d, 1e-8)

	empty := NewLookup3D(nil)
	assert.Equal(Te, 0, empty.Find(r3.Vec{}, 10).Len())
	assert.False(Te, empty.Check(r3.Vec{}, 10))
	_, _, ok = empty.Nearest(r3.Vec{})
	assert.False(Te, ok)
	assert.True(Te, empty.Boundary().Empty)
}

// compares the tree with a brute force search
func TestLookup3DBruteForce(Te *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	pos := make([]r3.Vec, 500)
	for i := range pos {
		pos[i] = r3.Vec{X: rnd.Float64() * 30, Y: rnd.Float64() * 30, Z: rnd.Float64() * 30}
	}
	L := NewLookup3D(pos)
	for k := 0; k < 20; k++ {
		q := r3.Vec{X: rnd.Float64() * 30, Y: rnd.Float64() * 30, Z: rnd.Float64() * 30}
		want := make([]int, 0, 10)
		for i, p := range pos {
			if r3.Norm(r3.Sub(p, q)) <= 4 {
				want = append(want, i)
			}
		}
		assert.ElementsMatch(Te, want, L.Find(q, 4).Indices)
	}
}

func TestBoundary(Te *testing.T) {
	b := BoundaryOf([]r3.Vec{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 0}, {X: 0, Y: 1, Z: 4}})
	assert.Equal(Te, r3.Vec{X: -1, Y: 0, Z: 0}, b.Box.Min)
	assert.Equal(Te, r3.Vec{X: 1, Y: 2, Z: 4}, b.Box.Max)
	assert.Equal(Te, r3.Vec{X: 0, Y: 1, Z: 2}, b.Sphere.Center)
	assert.InDelta(Te, 2.449489743, b.Sphere.Radius, 1e-8)
	assert.True(Te, b.Contains(r3.Vec{Z: 3}))
	assert.False(Te, b.Contains(r3.Vec{Z: 5}))
	assert.False(Te, BoundaryOf(nil).Contains(r3.Vec{}))
	s := Sphere{Center: r3.Vec{X: 10}, Radius: 1}
	assert.InDelta(Te, math.Sqrt(105)-1-2.449489743, b.Sphere.Gap(s), 1e-8)
}
