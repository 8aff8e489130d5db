/*
 * builder.go, part of biostruct.
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
	chem "github.com/rmera/biostruct"
)

// Builder collects units for a new structure. Unit ids are given in insertion order,
// starting from 0. A Builder is not safe for concurrent use.
type Builder struct {
	units []*Unit
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddUnit adds a new unit with the given data, and returns it.
func (B *Builder) AddUnit(kind Kind, model *chem.Model, op *SymmetryOperator, elements []int) (*Unit, error) {
	u, err := NewUnit(len(B.units), kind, model, op, elements)
	if err != nil {
		return nil, errDecorate(err, "AddUnit")
	}
	B.units = append(B.units, u)
	return u, nil
}

// AddWithOperator adds a copy of the unit, with op applied after its own operator.
func (B *Builder) AddWithOperator(u *Unit, op *SymmetryOperator) *Unit {
	n := u.ApplyOperator(len(B.units), op)
	B.units = append(B.units, n)
	return n
}

// IsEmpty returns true if no unit has been added.
func (B *Builder) IsEmpty() bool { return len(B.units) == 0 }

// Structure returns a structure with the units added so far.
func (B *Builder) Structure() *Structure {
	return New(B.units)
}

func rangeInts(from, to int) []int {
	ret := make([]int, to-from)
	for i := range ret {
		ret[i] = from + i
	}
	return ret
}

// OfModel returns a structure with one atomic unit per chain of the model, and one
// coarse unit per chain of spheres and of gaussians, all with the identity operator.
// Runs of consecutive single-atom chains (ions, waters) are merged into one unit.
func OfModel(m *chem.Model) *Structure {
	if m == nil {
		panic(chem.ErrNilModel)
	}
	B := NewBuilder()
	off := m.Atomic.ChainAtomSegments.Offsets
	count := m.Atomic.ChainCount()
	for c := 0; c < count; c++ {
		start := off[c]
		if off[c+1]-off[c] == 1 {
			for c+1 < count && off[c+2]-off[c+1] == 1 {
				c++
			}
		}
		B.units = append(B.units, newUnit(len(B.units), Atomic, m, nil, rangeInts(start, off[c+1])))
	}
	for _, kind := range []Kind{Spheres, Gaussians} {
		els := m.Coarse.Elements(kind)
		if els.Count() == 0 {
			continue
		}
		seg := els.ChainElementSegments
		for c := 0; c < seg.Count(); c++ {
			from, to := seg.Segment(c)
			B.units = append(B.units, newUnit(len(B.units), kind, m, nil, rangeInts(from, to)))
		}
	}
	return B.Structure()
}

// WithOperators returns a structure with a copy of every unit of s under every one
// of the operators. Units are added operator by operator.
func WithOperators(s *Structure, ops []*SymmetryOperator) *Structure {
	B := NewBuilder()
	for _, op := range ops {
		for _, u := range s.units {
			B.AddWithOperator(u, op)
		}
	}
	return B.Structure()
}
