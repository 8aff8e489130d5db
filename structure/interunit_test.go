/*
 * interunit_test.go, part of biostruct.
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/biostruct"
)

func TestInterUnitBondsExplicit(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	s := OfModel(m)
	b := s.InterUnitBonds()
	assert.Equal(Te, 3, b.EdgeCount())
	require.Len(Te, b.Edges(), 2)
	assert.Equal(Te, []int{1, 2}, b.BondedUnits(0))
	assert.Equal(Te, []int{0}, b.BondedUnits(1))
	assert.Nil(Te, b.Pair(1, 2))

	ab := b.Pair(0, 1)
	require.NotNil(Te, ab)
	require.Len(Te, ab.Bonds, 2)
	//SG-SG disulfide
	assert.Equal(Te, 4, ab.Bonds[0].IndexA)
	assert.Equal(Te, 2, ab.Bonds[0].IndexB)
	assert.Equal(Te, chem.LinkCovalent|chem.LinkSulfide, ab.Bonds[0].Flags)
	assert.InDelta(Te, 2.03, ab.Bonds[0].Distance, 1e-9)
	//O...N hydrogen bond, no symmetry given means identity.
	assert.Equal(Te, 8, ab.Bonds[1].IndexA)
	assert.Equal(Te, 0, ab.Bonds[1].IndexB)
	assert.Equal(Te, 2, ab.Bonds[1].Order)
	assert.Equal(Te, chem.LinkHydrogen, ab.Bonds[1].Flags)

	ba := b.Pair(1, 0)
	require.NotNil(Te, ba)
	assert.Equal(Te, 2, ba.Bonds[0].IndexA)
	assert.Equal(Te, 4, ba.Bonds[0].IndexB)

	zn := b.Pair(0, 2)
	require.NotNil(Te, zn)
	require.Len(Te, zn.Bonds, 1)
	assert.Equal(Te, chem.LinkMetallicCoordination, zn.Bonds[0].Flags)
	assert.Equal(Te, 1, zn.Bonds[0].Order)
	assert.Same(Te, b, s.InterUnitBonds())
}

// explicit connections only apply to units under the operators they name.
func TestInterUnitBondsSymmetry(Te *testing.T) {
	m := readModel(Te, "../testdata/small.cif")
	op := TranslationOperator("1_655", r3.Vec{})
	s := New([]*Unit{MustUnit(0, Atomic, m, nil, rangeInts(0, 10)), MustUnit(1, Atomic, m, op, []int{10, 11, 12})})
	b := s.InterUnitBonds()
	assert.Equal(Te, 0, b.EdgeCount())
}

func TestInterUnitBondsHeuristic(Te *testing.T) {
	recs := []chem.AtomRecord{atom("A", "C", 1), atom("A", "H", 2), atom("B", "C", 1), atom("B", "H", 2), atom("B", "C", 3)}
	coords := []float64{
		0, 0, 0,
		5, 5, 0,
		1.5, 0, 0,
		5, 5.7, 0,
		0.5, 0.1, 0, //too close to the first C
	}
	m := buildModel(Te, recs, coords)
	B := NewBuilder()
	_, err := B.AddUnit(Atomic, m, nil, []int{0, 1})
	require.NoError(Te, err)
	_, err = B.AddUnit(Atomic, m, nil, []int{2, 3, 4})
	require.NoError(Te, err)
	s := B.Structure()

	b := s.InterUnitBonds()
	require.Equal(Te, 1, b.EdgeCount())
	bond := b.Pair(0, 1).Bonds[0]
	assert.Equal(Te, 0, bond.IndexA)
	assert.Equal(Te, 0, bond.IndexB)
	assert.Equal(Te, 1, bond.Order)
	assert.True(Te, bond.Flags.Has(chem.LinkComputed))
	assert.True(Te, bond.Flags.Has(chem.LinkCovalent))
	assert.InDelta(Te, 1.5, bond.Distance, 1e-9)

	p := DefaultBondingParams()
	p.SkipHydrogenPairs = false
	b = ComputeInterUnitBonds(s, p)
	assert.Equal(Te, 2, b.EdgeCount())

	p = DefaultBondingParams()
	p.MaxRadius = 1
	assert.Equal(Te, 0, ComputeInterUnitBonds(s, p).EdgeCount())
}

func TestInterUnitBondsValence(Te *testing.T) {
	recs := []chem.AtomRecord{atom("A", "H", 1), atom("B", "C", 1), atom("B", "C", 2)}
	coords := []float64{
		0, 0, 0,
		1.0, 0, 0,
		-1.1, 0, 0,
	}
	m := buildModel(Te, recs, coords)
	s := New([]*Unit{MustUnit(0, Atomic, m, nil, []int{0}), MustUnit(1, Atomic, m, nil, []int{1, 2})})
	b := s.InterUnitBonds()
	require.Equal(Te, 1, b.EdgeCount())
	assert.Equal(Te, 0, b.Pair(1, 0).Bonds[0].IndexA, "the shortest bond must be kept")

	p := DefaultBondingParams()
	p.EnforceValence = false
	assert.Equal(Te, 2, ComputeInterUnitBonds(s, p).EdgeCount())
}

func TestInterUnitBondsCoarse(Te *testing.T) {
	m := readModel(Te, "../testdata/coarse.cif")
	b := OfModel(m).InterUnitBonds()
	assert.Equal(Te, 0, b.EdgeCount())
	assert.Empty(Te, b.Edges())
}

func TestLoadBondingParams(Te *testing.T) {
	p, err := LoadBondingParams(strings.NewReader(""))
	require.NoError(Te, err)
	assert.Equal(Te, DefaultBondingParams(), p)

	p, err = LoadBondingParams(strings.NewReader("tolerance: 0.3\nenforce_valence: false\n"))
	require.NoError(Te, err)
	assert.Equal(Te, 0.3, p.Tolerance)
	assert.False(Te, p.EnforceValence)
	assert.Equal(Te, 0.63, p.TooClose)
	assert.Equal(Te, 4.0, p.MaxRadius)

	_, err = LoadBondingParams(strings.NewReader("tolerance: -1\n"))
	assert.Error(Te, err)
	_, err = LoadBondingParams(strings.NewReader("max_radius: 0.5\n"))
	assert.ErrorContains(Te, err, "MaxRadius")
	_, err = LoadBondingParams(strings.NewReader("max_radios: 5\n"))
	assert.Error(Te, err)
	_, err = LoadBondingParamsFile("does/not/exist.yaml")
	assert.Error(Te, err)
}
