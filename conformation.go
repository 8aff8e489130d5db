/*
 * conformation.go, part of biostruct.
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

package chem

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	v3 "github.com/rmera/biostruct/v3"
)

// Conformation contains the coordinates, occupancies and B factors of a model.
// Atom ids belong here and not to the hierarchy, as mmCIF gives different ids to the
// corresponding atoms in different models.
type Conformation struct {
	ID        uuid.UUID
	AtomID    []int
	Occupancy []float64
	BFactor   []float64
	Coords    *v3.Matrix //model-local coordinates. Use the unit's operator to get world positions.
}

// NewConformation returns a conformation for the coordinates. Atom ids are
// 1..N, occupancies 1 and B factors 0.
func NewConformation(coords *v3.Matrix) *Conformation {
	n := coords.NVecs()
	c := &Conformation{
		ID:        uuid.New(),
		AtomID:    make([]int, n),
		Occupancy: make([]float64, n),
		BFactor:   make([]float64, n),
		Coords:    coords,
	}
	for i := range c.AtomID {
		c.AtomID[i] = i + 1
		c.Occupancy[i] = 1
	}
	return c
}

// Len returns the number of atoms in the conformation
func (C *Conformation) Len() int {
	return C.Coords.NVecs()
}

// Position returns the model-local position of the atom.
func (C *Conformation) Position(atom int) r3.Vec {
	return C.Coords.Vec(atom)
}
