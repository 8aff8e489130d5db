/*
 * coarse.go, part of biostruct.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	v3 "github.com/rmera/biostruct/v3"
)

// UnitKind is the kind of elements a unit contains.
type UnitKind int

const (
	Atomic UnitKind = iota
	Spheres
	Gaussians
)

func (k UnitKind) String() string {
	switch k {
	case Atomic:
		return "atomic"
	case Spheres:
		return "spheres"
	case Gaussians:
		return "gaussians"
	}
	return fmt.Sprintf("UnitKind(%d)", int(k))
}

// CoarseRecord is the data for one coarse element.
type CoarseRecord struct {
	EntityID string
	AsymID   string
	SeqBegin int
	SeqEnd   int
	Pos      r3.Vec
	Radius   float64 //spheres
	Weight   float64 //gaussians
}

// CoarseElements is a set of coarse-grained elements (spheres or gaussians), each of
// them covering a range of residues of a chain.
type CoarseElements struct {
	EntityID             []string
	AsymID               []string
	SeqBegin             []int
	SeqEnd               []int
	ChainElementSegments Segmentation
	Positions            *v3.Matrix
	Radius               []float64
	Weight               []float64
}

// NewCoarseElements builds a set of coarse elements from the records, in order.
// A new chain starts when the entity or the asym id changes.
func NewCoarseElements(recs []CoarseRecord) *CoarseElements {
	n := len(recs)
	c := &CoarseElements{
		EntityID:  make([]string, n),
		AsymID:    make([]string, n),
		SeqBegin:  make([]int, n),
		SeqEnd:    make([]int, n),
		Radius:    make([]float64, n),
		Weight:    make([]float64, n),
		Positions: v3.Zeros(n),
	}
	for i, r := range recs {
		if i == 0 || r.EntityID != recs[i-1].EntityID || r.AsymID != recs[i-1].AsymID {
			c.ChainElementSegments.Offsets = append(c.ChainElementSegments.Offsets, i)
		}
		c.EntityID[i] = r.EntityID
		c.AsymID[i] = r.AsymID
		c.SeqBegin[i] = r.SeqBegin
		c.SeqEnd[i] = r.SeqEnd
		c.Radius[i] = r.Radius
		c.Weight[i] = r.Weight
		c.Positions.SetVec(i, r.Pos)
	}
	if n > 0 {
		c.ChainElementSegments.Offsets = append(c.ChainElementSegments.Offsets, n)
	}
	return c
}

// Count returns the number of elements in the set. A nil set has zero elements.
func (C *CoarseElements) Count() int {
	if C == nil {
		return 0
	}
	return len(C.AsymID)
}

// Position returns the model-local position of element i
func (C *CoarseElements) Position(i int) r3.Vec {
	return C.Positions.Vec(i)
}

// Covers returns true if element i belongs to the chain asym and its
// residue range contains seq.
func (C *CoarseElements) Covers(i int, asym string, seq int) bool {
	return C.AsymID[i] == asym && C.SeqBegin[i] <= seq && seq <= C.SeqEnd[i]
}

// CoarseHierarchy contains the coarse-grained representation of a model, if any.
type CoarseHierarchy struct {
	Spheres   *CoarseElements
	Gaussians *CoarseElements
}

// IsDefined returns true if the hierarchy contains any element.
func (C *CoarseHierarchy) IsDefined() bool {
	return C != nil && (C.Spheres.Count() > 0 || C.Gaussians.Count() > 0)
}

// Elements returns the element set of the given kind (nil for atomic).
func (C *CoarseHierarchy) Elements(kind UnitKind) *CoarseElements {
	if C == nil {
		return nil
	}
	switch kind {
	case Spheres:
		return C.Spheres
	case Gaussians:
		return C.Gaussians
	}
	return nil
}
