/*
 * interunit.go, part of biostruct.
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
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/biostruct"
)

// Bond is a bond between the elements at position IndexA of one unit, and IndexB
// of another.
type Bond struct {
	IndexA   int
	IndexB   int
	Order    int
	Flags    chem.LinkFlag
	Distance float64
}

// UnitPairBonds are the bonds between two units, oriented from UnitA to UnitB.
type UnitPairBonds struct {
	UnitA int
	UnitB int
	Bonds []Bond
}

func (P *UnitPairBonds) reversed() *UnitPairBonds {
	r := &UnitPairBonds{UnitA: P.UnitB, UnitB: P.UnitA, Bonds: make([]Bond, len(P.Bonds))}
	for i, b := range P.Bonds {
		b.IndexA, b.IndexB = b.IndexB, b.IndexA
		r.Bonds[i] = b
	}
	return r
}

type unitPair struct {
	a, b int
}

// InterUnitBonds is the graph of bonds between atoms of different units. It is immutable.
type InterUnitBonds struct {
	pairs  map[unitPair]*UnitPairBonds
	bonded map[int][]int
	edges  []*UnitPairBonds
}

func newInterUnitBonds(edges []*UnitPairBonds) *InterUnitBonds {
	I := &InterUnitBonds{
		pairs:  make(map[unitPair]*UnitPairBonds, 2*len(edges)),
		bonded: make(map[int][]int),
		edges:  edges,
	}
	for _, e := range edges {
		I.pairs[unitPair{e.UnitA, e.UnitB}] = e
		I.pairs[unitPair{e.UnitB, e.UnitA}] = e.reversed()
		I.bonded[e.UnitA] = append(I.bonded[e.UnitA], e.UnitB)
		I.bonded[e.UnitB] = append(I.bonded[e.UnitB], e.UnitA)
	}
	for _, v := range I.bonded {
		sort.Ints(v)
	}
	return I
}

// Pair returns the bonds between units a and b, oriented from a, or nil if there are none.
func (I *InterUnitBonds) Pair(a, b int) *UnitPairBonds {
	return I.pairs[unitPair{a, b}]
}

// BondedUnits returns the ids of the units bonded to the given one, in increasing order.
func (I *InterUnitBonds) BondedUnits(unit int) []int {
	return I.bonded[unit]
}

// Edges returns the bonded unit pairs, each once, with UnitA < UnitB.
func (I *InterUnitBonds) Edges() []*UnitPairBonds {
	return I.edges
}

// EdgeCount returns the total number of bonds, each counted once.
func (I *InterUnitBonds) EdgeCount() int {
	n := 0
	for _, e := range I.edges {
		n += len(e.Bonds)
	}
	return n
}

// ComputeInterUnitBonds finds the bonds between the atomic units of the structure
// using the given parameters. Explicit connections of the models are used where
// available, and a distance criterion elsewhere.
func ComputeInterUnitBonds(s *Structure, p BondingParams) *InterUnitBonds {
	var atomic []*Unit
	for _, u := range s.units {
		if u.kind == Atomic && u.Len() > 0 {
			atomic = append(atomic, u)
		}
	}
	var edges []*UnitPairBonds
	for i, a := range atomic {
		for _, b := range atomic[i+1:] {
			if a.Boundary().Sphere.Gap(b.Boundary().Sphere) > p.MaxRadius {
				continue
			}
			if bonds := pairBonds(a, b, p); len(bonds) > 0 {
				edges = append(edges, &UnitPairBonds{UnitA: a.id, UnitB: b.id, Bonds: bonds})
			}
		}
	}
	ret := newInterUnitBonds(edges)
	chem.Logger().Debug("inter-unit bonds", zap.Int("atomic units", len(atomic)),
		zap.Int("bonded pairs", len(edges)), zap.Int("bonds", ret.EdgeCount()))
	return ret
}

func symbolOf(m *chem.Model, atom int) string {
	syms := m.Atomic.Atoms.TypeSymbol
	if atom < len(syms) {
		return syms[atom]
	}
	return ""
}

// pairBonds returns the bonds between the atoms of units a and b.
func pairBonds(a, b *Unit, p BondingParams) []Bond {
	scA := chem.StructConnFromModel(a.model)
	scB := chem.StructConnFromModel(b.model)
	hasEntries := func(sc *chem.StructConn, atom int) bool {
		return sc != nil && len(sc.AtomEntries(atom)) > 0
	}
	var explicit, computed []Bond
	lookupB := b.Lookup3D()
	for i, atomA := range a.elements {
		if hasEntries(scA, atomA) {
			if a.model == b.model {
				explicit = append(explicit, explicitBonds(a, b, i, scA.AtomEntries(atomA))...)
			}
			continue
		}
		symA := symbolOf(a.model, atomA)
		radA, ok := chem.CovalentRadius(symA)
		if !ok {
			continue
		}
		hydA := chem.NormalizeSymbol(symA) == "H"
		posA := a.Position(i)
		found := lookupB.Find(posA, p.MaxRadius)
		for k, j := range found.Indices {
			atomB := b.elements[j]
			if hasEntries(scB, atomB) {
				continue
			}
			symB := symbolOf(b.model, atomB)
			if p.SkipHydrogenPairs && hydA && chem.NormalizeSymbol(symB) == "H" {
				continue
			}
			radB, ok := chem.CovalentRadius(symB)
			if !ok {
				continue
			}
			d := math.Sqrt(found.SquaredDistances[k])
			if d > p.TooClose && d < radA+radB+p.Tolerance {
				computed = append(computed, Bond{IndexA: i, IndexB: j, Order: 1, Flags: chem.LinkCovalent | chem.LinkComputed, Distance: d})
			}
		}
	}
	if p.EnforceValence {
		computed = capValence(a, b, explicit, computed)
	}
	ret := append(explicit, computed...)
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].IndexA != ret[j].IndexA {
			return ret[i].IndexA < ret[j].IndexA
		}
		return ret[i].IndexB < ret[j].IndexB
	})
	return ret
}

// explicitBonds returns the bonds given by the entries of the atom at position i of a,
// whose partner is in b, and whose symmetry codes match the operators of both units.
func explicitBonds(a, b *Unit, i int, entries []*chem.StructConnEntry) []Bond {
	var ret []Bond
	atomA := a.elements[i]
	for _, e := range entries {
		if len(e.Partners) != 2 {
			continue
		}
		for k, self := range e.Partners {
			if self.AtomIndex != atomA {
				continue
			}
			other := e.Partners[1-k]
			j := b.ElementIndexOf(other.AtomIndex)
			if j < 0 || self.Symmetry != a.op.Name || other.Symmetry != b.op.Name {
				continue
			}
			d := e.Distance
			if d == 0 {
				d = r3.Norm(r3.Sub(a.Position(i), b.Position(j)))
			}
			ret = append(ret, Bond{IndexA: i, IndexB: j, Order: e.Order, Flags: e.Flags, Distance: d})
			break
		}
	}
	return ret
}

// capValence keeps, shortest first, the computed bonds that don't take either
// atom over its maximum number of bonds. Explicit bonds count towards the limit.
func capValence(a, b *Unit, explicit, computed []Bond) []Bond {
	if len(computed) == 0 {
		return computed
	}
	countA := make(map[int]int)
	countB := make(map[int]int)
	for _, e := range explicit {
		countA[e.IndexA]++
		countB[e.IndexB]++
	}
	sorted := make([]Bond, len(computed))
	copy(sorted, computed)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Distance < sorted[j].Distance })
	ret := sorted[:0]
	for _, c := range sorted {
		maxA := chem.MaxBonds(symbolOf(a.model, a.elements[c.IndexA]))
		maxB := chem.MaxBonds(symbolOf(b.model, b.elements[c.IndexB]))
		if (maxA > 0 && countA[c.IndexA] >= maxA) || (maxB > 0 && countB[c.IndexB] >= maxB) {
			continue
		}
		countA[c.IndexA]++
		countB[c.IndexB]++
		ret = append(ret, c)
	}
	return ret
}
