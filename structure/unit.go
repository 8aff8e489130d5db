/*
 * unit.go, part of biostruct.
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
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/geom"
)

// Kind is the kind of the elements of a unit.
type Kind = chem.UnitKind

const (
	Atomic    = chem.Atomic
	Spheres   = chem.Spheres
	Gaussians = chem.Gaussians
)

// Unit is a set of elements of one model that share a symmetry operator. Units are
// immutable. Elements are indexes into the model (atoms or coarse elements, by kind),
// strictly increasing.
type Unit struct {
	id       int
	kind     Kind
	model    *chem.Model
	elements []int
	op       *SymmetryOperator

	lookupOnce sync.Once
	lookup     *geom.Lookup3D
}

// NewUnit returns a new unit. The elements are not copied. A nil operator
// means the identity.
func NewUnit(id int, kind Kind, model *chem.Model, op *SymmetryOperator, elements []int) (*Unit, error) {
	if model == nil {
		return nil, chem.NewError("nil model", "structure.NewUnit")
	}
	if kind < Atomic || kind > Gaussians {
		return nil, chem.NewError(fmt.Sprintf("invalid unit kind %d", int(kind)), "structure.NewUnit")
	}
	n := model.ElementCount(kind)
	for i, e := range elements {
		if e < 0 || e >= n {
			return nil, chem.NewError(fmt.Sprintf("element %d out of range for %d %s elements", e, n, kind), "structure.NewUnit")
		}
		if i > 0 && e <= elements[i-1] {
			return nil, chem.NewError(fmt.Sprintf("elements not strictly increasing at position %d", i), "structure.NewUnit")
		}
	}
	return newUnit(id, kind, model, op, elements), nil
}

// MustUnit is like NewUnit, but panics on error.
func MustUnit(id int, kind Kind, model *chem.Model, op *SymmetryOperator, elements []int) *Unit {
	u, err := NewUnit(id, kind, model, op, elements)
	if err != nil {
		panic(err.Error())
	}
	return u
}

func newUnit(id int, kind Kind, model *chem.Model, op *SymmetryOperator, elements []int) *Unit {
	if op == nil {
		op = DefaultOperator()
	}
	return &Unit{id: id, kind: kind, model: model, elements: elements, op: op}
}

// ID returns the id of the unit, unique within a structure.
func (U *Unit) ID() int { return U.id }

// Kind returns the kind of elements in the unit
func (U *Unit) Kind() Kind { return U.kind }

// Model returns the model the unit's elements belong to.
func (U *Unit) Model() *chem.Model { return U.model }

// Elements returns the elements of the unit. The slice must not be modified.
func (U *Unit) Elements() []int { return U.elements }

// Len returns the number of elements in the unit
func (U *Unit) Len() int { return len(U.elements) }

// Operator returns the symmetry operator of the unit.
func (U *Unit) Operator() *SymmetryOperator { return U.op }

// ApplyOperator returns a new unit with the same kind, model and elements, the given id,
// and the composition of the unit's operator followed by op.
func (U *Unit) ApplyOperator(id int, op *SymmetryOperator) *Unit {
	return newUnit(id, U.kind, U.model, Compose(U.op, op), U.elements)
}

// ElementIndexOf returns the position of the model element in the unit, or -1.
func (U *Unit) ElementIndexOf(element int) int {
	i := sort.SearchInts(U.elements, element)
	if i < len(U.elements) && U.elements[i] == element {
		return i
	}
	return -1
}

// Position returns the world-space position of the element at position i of the unit.
func (U *Unit) Position(i int) r3.Vec {
	e := U.elements[i]
	var p r3.Vec
	if U.kind == Atomic {
		p = U.model.Conformation.Position(e)
	} else {
		p = U.model.Coarse.Elements(U.kind).Position(e)
	}
	return U.op.Apply(p)
}

// Positions returns the world-space positions of all the elements of the unit.
func (U *Unit) Positions() []r3.Vec {
	ret := make([]r3.Vec, len(U.elements))
	for i := range U.elements {
		ret[i] = U.Position(i)
	}
	return ret
}

// Lookup3D returns a spatial lookup over the world-space positions of the unit. Indexes
// in results are positions in the unit. It is built on first use.
func (U *Unit) Lookup3D() *geom.Lookup3D {
	U.lookupOnce.Do(func() {
		U.lookup = geom.NewLookup3D(U.Positions())
	})
	return U.lookup
}

// Boundary returns the world-space boundary of the unit.
func (U *Unit) Boundary() geom.Boundary {
	return U.Lookup3D().Boundary()
}

func (U *Unit) String() string {
	return fmt.Sprintf("unit %d (%s, %d elements, %s)", U.id, U.kind, len(U.elements), U.op.Name)
}
