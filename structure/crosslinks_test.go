/*
 * crosslinks_test.go, part of biostruct.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCrossLinksAtomic(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	s := OfModel(m)
	c := s.CrossLinkRestraints()
	require.Equal(Te, 4, c.Count())
	p := c.Pairs()
	//CA-CA inside chain A
	assert.Equal(Te, 0, p[0].UnitA.ID())
	assert.Equal(Te, 0, p[0].UnitB.ID())
	assert.Equal(Te, 1, p[0].IndexA)
	assert.Equal(Te, 6, p[0].IndexB)
	assert.Equal(Te, p[0].IndexA, p[1].IndexB)
	assert.Equal(Te, "upper bound", p[0].RestraintType)
	assert.Equal(Te, 25.0, p[0].DistanceThreshold)
	assert.InDelta(Te, 3.6418, p[0].Distance(), 1e-4)
	//chain A CYS 1 to chain B CYS 1, through the CA of each residue
	assert.Equal(Te, 0, p[2].UnitA.ID())
	assert.Equal(Te, 1, p[2].UnitB.ID())
	assert.Equal(Te, 1, p[2].IndexA)
	assert.Equal(Te, 1, p[2].IndexB)
	assert.Equal(Te, 1.5, p[2].Sigma1)
	assert.Equal(Te, 2.5, p[2].Sigma2)
	assert.Equal(Te, 1, p[3].UnitA.ID())
	assert.InDelta(Te, 5.0302, p[3].Distance(), 1e-4)

	assert.Len(Te, c.PairsOfUnit(0), 3)
	assert.Len(Te, c.PairsOfUnit(1), 1)
	assert.Empty(Te, c.PairsOfUnit(2))
	assert.Same(Te, c, s.CrossLinkRestraints())
}

// a row that maps to one element of a unit only gives restraints when
// its other end is in another unit of the same model.
func TestCrossLinksSingleUnit(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	s := New([]*Unit{MustUnit(0, Atomic, m, nil, rangeInts(0, 10))})
	c := s.CrossLinkRestraints()
	assert.Equal(Te, 2, c.Count())

	other := readModel(Te, "../testdata/small.cif")
	s = New([]*Unit{MustUnit(0, Atomic, m, nil, rangeInts(0, 10)), MustUnit(1, Atomic, other, nil, []int{10, 11, 12})})
	assert.Equal(Te, 2, s.CrossLinkRestraints().Count())
}

func TestCrossLinksCoarse(Te *testing.T) {
	m := readModel(Te, "../testdata/coarse.cif")
	s := OfModel(m)
	c := s.CrossLinkRestraints()
	require.Equal(Te, 4, c.Count())
	p := c.Pairs()
	assert.Equal(Te, Spheres, p[0].UnitA.Kind())
	assert.Equal(Te, 0, p[0].IndexA)
	assert.Equal(Te, 2, p[0].IndexB)
	assert.InDelta(Te, 12.0, p[0].Distance(), 1e-9)
	assert.Equal(Te, 1, p[2].IndexA)
	assert.Equal(Te, 1, p[2].UnitB.ID())
	assert.Equal(Te, 1, p[2].IndexB)
	assert.InDelta(Te, math.Sqrt(68), p[2].Distance(), 1e-9)

	sum := Summarize(c.Pairs())
	assert.Equal(Te, 2, sum.Restraints)
	assert.InDelta(Te, (12+math.Sqrt(68))/2, sum.Mean, 1e-9)
	assert.Equal(Te, 1.0, sum.Satisfied)
	//one direction of each restraint is enough
	half := Summarize(c.PairsOfUnit(0))
	assert.Equal(Te, 2, half.Restraints)
	assert.InDelta(Te, sum.Mean, half.Mean, 1e-12)
}

func TestSummarize(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	//moving chain B away breaks the inter-chain restraint.
	a := MustUnit(0, Atomic, m, nil, rangeInts(0, 10))
	b := MustUnit(1, Atomic, m, TranslationOperator("far", r3.Vec{Y: -40}), []int{10, 11, 12})
	sum := Summarize(New([]*Unit{a, b}).CrossLinkRestraints().Pairs())
	assert.Equal(Te, 2, sum.Restraints)
	assert.Equal(Te, 0.5, sum.Satisfied)
	assert.Len(Te, sum.Distances, 2)
	for _, p := range New([]*Unit{a, b}).CrossLinkRestraints().Pairs() {
		assert.Equal(Te, p.UnitA == p.UnitB, p.Satisfied(), "pair %d:%d->%d:%d", p.UnitA.ID(), p.IndexA, p.UnitB.ID(), p.IndexB)
	}

	empty := Summarize(nil)
	assert.Equal(Te, 0, empty.Restraints)
	assert.True(Te, math.IsNaN(empty.Mean))
}

// three spheres of chain A cover the same residue. Inside the unit only the first two
// are paired, and the row is not used between units since it is ambiguous in chain A.
func TestCrossLinksOverlappingElements(Te *testing.T) {
	m := readModel(Te, "../testdata/coarse_overlap.cif")
	s := OfModel(m)
	require.Len(Te, s.Units(), 2)
	c := s.CrossLinkRestraints()
	require.Equal(Te, 2, c.Count())
	p := c.Pairs()
	assert.Equal(Te, 0, p[0].UnitA.ID())
	assert.Equal(Te, 0, p[0].UnitB.ID())
	assert.Equal(Te, 0, p[0].IndexA)
	assert.Equal(Te, 1, p[0].IndexB)
	assert.Equal(Te, 1, p[1].IndexA)
	assert.Equal(Te, 0, p[1].IndexB)
	assert.Equal(Te, 0, p[0].Row)
	assert.Equal(Te, 30.0, p[1].DistanceThreshold)
	assert.Empty(Te, c.PairsOfUnit(1))
}

// pairs between a unit and the later units come before the pairs inside those units.
func TestCrossLinksOrder(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	chainB := MustUnit(0, Atomic, m, nil, []int{10, 11, 12})
	chainA := MustUnit(1, Atomic, m, nil, rangeInts(0, 10))
	p := New([]*Unit{chainA, chainB}).CrossLinkRestraints().Pairs()
	require.Len(Te, p, 4)
	assert.Equal(Te, [2]int{0, 1}, [2]int{p[0].UnitA.ID(), p[0].UnitB.ID()})
	assert.Equal(Te, 1, p[0].IndexA)
	assert.Equal(Te, 1, p[0].IndexB)
	assert.Equal(Te, 1, p[0].Row)
	assert.Equal(Te, [2]int{1, 0}, [2]int{p[1].UnitA.ID(), p[1].UnitB.ID()})
	assert.Equal(Te, [2]int{1, 1}, [2]int{p[2].UnitA.ID(), p[2].UnitB.ID()})
	assert.Equal(Te, 0, p[2].Row)
	assert.Equal(Te, 6, p[2].IndexB)
	assert.Equal(Te, p[2].IndexA, p[3].IndexB)
}
