/*
 * graph.go, part of biostruct.
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

// Package chemgraph presents the units of a structure, and the bonds between them,
// as a gonum graph.
package chemgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/rmera/biostruct/structure"
)

// Unit is a graph node for a unit of a structure. Its ID is the unit id.
type Unit struct {
	*structure.Unit
}

func (U Unit) ID() int64 {
	return int64(U.Unit.ID())
}

// UnitGraph returns an undirected graph with a node per unit of s, and an edge between
// each pair of bonded units. If weightfunc is nil, the weight of an edge is the number
// of bonds between both units.
func UnitGraph(s *structure.Structure, weightfunc func(*structure.UnitPairBonds) float64) *simple.WeightedUndirectedGraph {
	return unitGraph(s, s.InterUnitBonds(), weightfunc)
}

func unitGraph(s *structure.Structure, bonds *structure.InterUnitBonds, weightfunc func(*structure.UnitPairBonds) float64) *simple.WeightedUndirectedGraph {
	if weightfunc == nil {
		weightfunc = func(P *structure.UnitPairBonds) float64 { return float64(len(P.Bonds)) }
	}
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, u := range s.Units() {
		g.AddNode(Unit{u})
	}
	for _, e := range bonds.Edges() {
		g.SetWeightedEdge(simple.WeightedEdge{
			F: g.Node(int64(e.UnitA)),
			T: g.Node(int64(e.UnitB)),
			W: weightfunc(e),
		})
	}
	return g
}

// ConnectedUnits returns the ids of the units of s, grouped in sets of units
// connected by bonds. Each set is sorted, and the sets are sorted by their first id.
func ConnectedUnits(s *structure.Structure) [][]int {
	return components(UnitGraph(s, nil))
}

// ConnectedUnitsWith is like ConnectedUnits, but uses the given bonds, which must have
// been computed for s.
func ConnectedUnitsWith(s *structure.Structure, bonds *structure.InterUnitBonds) [][]int {
	return components(unitGraph(s, bonds, nil))
}

func components(g graph.Undirected) [][]int {
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
