/*
 * crosslinks.go, part of biostruct.
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

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	chem "github.com/rmera/biostruct"
)

// Pair is one direction of a cross-link restraint between two elements of a structure,
// given as units and positions in those units.
type Pair struct {
	UnitA             *Unit
	IndexA            int
	UnitB             *Unit
	IndexB            int
	Row               int //row of the restraint in the model's table
	RestraintType     string
	DistanceThreshold float64
	Psi               float64
	Sigma1            float64
	Sigma2            float64
}

// Distance returns the world-space distance between both elements.
func (P Pair) Distance() float64 {
	return r3.Norm(r3.Sub(P.UnitA.Position(P.IndexA), P.UnitB.Position(P.IndexB)))
}

// Satisfied returns true if the elements are within the distance threshold of the restraint.
func (P Pair) Satisfied() bool {
	return P.Distance() <= P.DistanceThreshold
}

type pairKey struct {
	unitA, indexA, unitB, indexB, row int
}

// key is the same for both directions of a restraint.
func (P Pair) key() pairKey {
	k := pairKey{P.UnitA.id, P.IndexA, P.UnitB.id, P.IndexB, P.Row}
	if k.unitA > k.unitB || (k.unitA == k.unitB && k.indexA > k.indexB) {
		k.unitA, k.indexA, k.unitB, k.indexB = k.unitB, k.indexB, k.unitA, k.indexA
	}
	return k
}

// CrossLinkRestraints are the cross-link restraint pairs of a structure. Every
// restraint is present in both directions. It is immutable.
type CrossLinkRestraints struct {
	pairs  []Pair
	byUnit map[int][]int
}

func newCrossLinkRestraints(pairs []Pair) *CrossLinkRestraints {
	C := &CrossLinkRestraints{pairs: pairs, byUnit: make(map[int][]int)}
	for i, p := range pairs {
		C.byUnit[p.UnitA.id] = append(C.byUnit[p.UnitA.id], i)
	}
	return C
}

// Pairs returns all the pairs. The slice must not be modified.
func (C *CrossLinkRestraints) Pairs() []Pair { return C.pairs }

// Count returns the number of pairs, which is twice the number of restraints.
func (C *CrossLinkRestraints) Count() int { return len(C.pairs) }

// PairsOfUnit returns the pairs that start in the given unit.
func (C *CrossLinkRestraints) PairsOfUnit(id int) []Pair {
	idx := C.byUnit[id]
	ret := make([]Pair, len(idx))
	for i, v := range idx {
		ret[i] = C.pairs[v]
	}
	return ret
}

// unitRows are the restraint rows referencing elements of a unit, in order of first
// reference, and the unit positions each of them references.
type unitRows struct {
	order     []int
	positions map[int][]int
}

func rowsOfUnit(u *Unit, t *chem.CrossLinkRestraintTable) unitRows {
	r := unitRows{positions: make(map[int][]int)}
	for i, e := range u.elements {
		for _, row := range t.IndicesByElement(e, u.kind) {
			if _, ok := r.positions[row]; !ok {
				r.order = append(r.order, row)
			}
			r.positions[row] = append(r.positions[row], i)
		}
	}
	return r
}

func makePair(a *Unit, ia int, b *Unit, ib int, row int, r chem.CrossLinkRestraint) Pair {
	return Pair{
		UnitA:             a,
		IndexA:            ia,
		UnitB:             b,
		IndexB:            ib,
		Row:               row,
		RestraintType:     r.RestraintType,
		DistanceThreshold: r.DistanceThreshold,
		Psi:               r.Psi,
		Sigma1:            r.Sigma1,
		Sigma2:            r.Sigma2,
	}
}

// extractCrossLinks finds the restraints within each unit, and between each pair of
// units of the same model. Pairs are given unit by unit: those inside unit i, then
// those between unit i and each later unit. Within a unit, a row referencing more than
// two positions only gives a pair for the first two. Between units, a row is only used
// if it references exactly one position of each unit.
func extractCrossLinks(s *Structure) *CrossLinkRestraints {
	tables := make([]*chem.CrossLinkRestraintTable, len(s.units))
	rows := make([]unitRows, len(s.units))
	for i, u := range s.units {
		tables[i] = chem.CrossLinkRestraintsFromModel(u.model)
		if tables[i] != nil {
			rows[i] = rowsOfUnit(u, tables[i])
		}
	}
	var pairs []Pair
	for i, a := range s.units {
		t := tables[i]
		if t == nil {
			continue
		}
		for _, row := range rows[i].order {
			pos := rows[i].positions[row]
			if len(pos) < 2 {
				continue
			}
			r := t.Row(row)
			pairs = append(pairs, makePair(a, pos[0], a, pos[1], row, r), makePair(a, pos[1], a, pos[0], row, r))
		}
		for j := i + 1; j < len(s.units); j++ {
			b := s.units[j]
			if b.model != a.model {
				continue
			}
			for _, row := range rows[i].order {
				pa := rows[i].positions[row]
				pb := rows[j].positions[row]
				if len(pa) != 1 || len(pb) != 1 {
					continue
				}
				r := t.Row(row)
				pairs = append(pairs, makePair(a, pa[0], b, pb[0], row, r), makePair(b, pb[0], a, pa[0], row, r))
			}
		}
	}
	return newCrossLinkRestraints(pairs)
}

// CrossLinkSummary describes how well a set of restraints is satisfied.
type CrossLinkSummary struct {
	Restraints int
	Distances  []float64 //one per restraint, in order of first appearance
	Mean       float64
	StdDev     float64
	Satisfied  float64 //fraction of restraints within their threshold
}

// Summarize computes the distance statistics of the restraints in pairs. Each restraint
// is counted once, even if both of its directions are given.
func Summarize(pairs []Pair) CrossLinkSummary {
	var ret CrossLinkSummary
	satisfied := 0
	seen := make(map[pairKey]bool, len(pairs))
	for _, p := range pairs {
		k := p.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		d := p.Distance()
		ret.Distances = append(ret.Distances, d)
		if p.Satisfied() {
			satisfied++
		}
	}
	ret.Restraints = len(ret.Distances)
	switch ret.Restraints {
	case 0:
		ret.Mean, ret.StdDev = math.NaN(), math.NaN()
		return ret
	case 1:
		ret.Mean, ret.StdDev = ret.Distances[0], 0
	default:
		ret.Mean, ret.StdDev = stat.MeanStdDev(ret.Distances, nil)
	}
	ret.Satisfied = float64(satisfied) / float64(ret.Restraints)
	return ret
}
