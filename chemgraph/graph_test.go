/*
 * graph_test.go, part of biostruct.
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

package chemgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/cif"
	"github.com/rmera/biostruct/structure"
)

func smallStructure(Te *testing.T) *structure.Structure {
	Te.Helper()
	f, err := cif.ReadFile("../testdata/small.cif")
	require.NoError(Te, err)
	models, err := chem.ModelsFromCIF(f.Blocks[0])
	require.NoError(Te, err)
	return structure.OfModel(models[0])
}

func TestUnitGraph(Te *testing.T) {
	s := smallStructure(Te)
	g := UnitGraph(s, nil)
	assert.Equal(Te, 3, g.Nodes().Len())
	assert.Equal(Te, 2, g.Edges().Len())
	w, ok := g.Weight(0, 1)
	require.True(Te, ok)
	assert.Equal(Te, 2.0, w)
	w, ok = g.Weight(2, 0)
	require.True(Te, ok)
	assert.Equal(Te, 1.0, w)
	assert.False(Te, g.HasEdgeBetween(1, 2))
	n, ok := g.Node(1).(Unit)
	require.True(Te, ok)
	assert.Equal(Te, []int{10, 11, 12}, n.Elements())

	g = UnitGraph(s, func(P *structure.UnitPairBonds) float64 { return P.Bonds[0].Distance })
	w, _ = g.Weight(0, 1)
	assert.InDelta(Te, 2.03, w, 1e-9)
}

func TestConnectedUnits(Te *testing.T) {
	s := smallStructure(Te)
	assert.Equal(Te, [][]int{{0, 1, 2}}, ConnectedUnits(s))

	//the connections of the file only apply to the 1_555 copy, and the other
	//copy is too far for any bond.
	x := structure.WithOperators(s, []*structure.SymmetryOperator{structure.DefaultOperator(), structure.TranslationOperator("1_655", r3.Vec{X: 80})})
	assert.Equal(Te, [][]int{{0, 1, 2}, {3}, {4}, {5}}, ConnectedUnits(x))
}

func TestConnectedUnitsWith(Te *testing.T) {
	s := smallStructure(Te)
	p := structure.DefaultBondingParams()
	p.MaxRadius = 0.1
	//the sphere gap between the units is larger than 0.1 A
	assert.Equal(Te, [][]int{{0}, {1}, {2}}, ConnectedUnitsWith(s, structure.ComputeInterUnitBonds(s, p)))
}
