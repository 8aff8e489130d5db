/*
 * structure.go, part of biostruct.
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
	"encoding/binary"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/geom"
)

// Structure is an immutable collection of units, ordered by id. Its derived
// properties are computed on first use, once.
type Structure struct {
	units        []*Unit
	byID         map[int]*Unit
	elementCount int

	lookupOnce   sync.Once
	lookup       *Lookup3D
	bondsOnce    sync.Once
	bonds        *InterUnitBonds
	crossOnce    sync.Once
	crossLinks   *CrossLinkRestraints
	symOnce      sync.Once
	symGroups    []*SymmetryGroup
	hashOnce     sync.Once
	hash         int32
	boundaryOnce sync.Once
	boundary     geom.Boundary
}

// New returns a structure with the given units, sorted by id if they are not
// already. Unit ids are expected to be unique. The argument slice is not modified.
func New(units []*Unit) *Structure {
	s := &Structure{
		units: make([]*Unit, len(units)),
		byID:  make(map[int]*Unit, len(units)),
	}
	copy(s.units, units)
	sorted := true
	for i, u := range s.units {
		if i > 0 && u.id < s.units[i-1].id {
			sorted = false
		}
		s.byID[u.id] = u
		s.elementCount += len(u.elements)
	}
	if !sorted {
		sort.SliceStable(s.units, func(i, j int) bool { return s.units[i].id < s.units[j].id })
	}
	return s
}

// Units returns the units of the structure, sorted by id. The slice must not be modified.
func (S *Structure) Units() []*Unit { return S.units }

// Unit returns the unit with the given id, or nil.
func (S *Structure) Unit(id int) *Unit { return S.byID[id] }

// ElementCount returns the total number of elements in all the units.
func (S *Structure) ElementCount() int { return S.elementCount }

// IsEmpty returns true if the structure has no units
func (S *Structure) IsEmpty() bool { return len(S.units) == 0 }

// Models returns the distinct models of the units, in order of first appearance.
func (S *Structure) Models() []*chem.Model {
	seen := make(map[*chem.Model]bool)
	var ret []*chem.Model
	for _, u := range S.units {
		if !seen[u.model] {
			seen[u.model] = true
			ret = append(ret, u.model)
		}
	}
	return ret
}

func (S *Structure) logComputed(property string, start time.Time) {
	chem.Logger().Debug("structure property computed", zap.String("property", property),
		zap.Int("units", len(S.units)), zap.Int("elements", S.elementCount), zap.Duration("elapsed", time.Since(start)))
}

// Lookup3D returns a spatial lookup over all the elements of the structure.
func (S *Structure) Lookup3D() *Lookup3D {
	S.lookupOnce.Do(func() {
		t := time.Now()
		S.lookup = newLookup3D(S)
		S.logComputed("lookup3d", t)
	})
	return S.lookup
}

// Boundary returns the bounding box and sphere of all the elements of the structure.
func (S *Structure) Boundary() geom.Boundary {
	S.boundaryOnce.Do(func() {
		S.boundary = S.Lookup3D().Boundary()
	})
	return S.boundary
}

// InterUnitBonds returns the bonds between atoms of different units, computed
// with the default bonding parameters.
func (S *Structure) InterUnitBonds() *InterUnitBonds {
	S.bondsOnce.Do(func() {
		t := time.Now()
		S.bonds = ComputeInterUnitBonds(S, DefaultBondingParams())
		S.logComputed("inter-unit bonds", t)
	})
	return S.bonds
}

// CrossLinkRestraints returns the cross-link restraint pairs between the elements
// of the structure.
func (S *Structure) CrossLinkRestraints() *CrossLinkRestraints {
	S.crossOnce.Do(func() {
		t := time.Now()
		S.crossLinks = extractCrossLinks(S)
		S.logComputed("cross-link restraints", t)
	})
	return S.crossLinks
}

// SymmetryGroups returns the units grouped by model, kind and elements.
func (S *Structure) SymmetryGroups() []*SymmetryGroup {
	S.symOnce.Do(func() {
		t := time.Now()
		S.symGroups = groupUnits(S.units)
		S.logComputed("symmetry groups", t)
	})
	return S.symGroups
}

// HashCode returns a hash of the ids and elements of the units. Operators are
// not considered. Equal structures have equal hashes, but the converse is not true.
func (S *Structure) HashCode() int32 {
	S.hashOnce.Do(func() {
		h := int32(23)
		for _, u := range S.units {
			h = 31*h + int32(u.id)
			h = 31*h + elementsHash(u.elements)
		}
		h = 31*h + int32(S.elementCount)
		S.hash = hash1(h)
	})
	return S.hash
}

// ElementLocations returns an iterator over the elements of the structure.
func (S *Structure) ElementLocations() *ElementIterator {
	return &ElementIterator{units: S.units, elem: -1}
}

// AreEqual returns true if both structures have the same element count and the
// same units, compared by position: same ids and same elements. Operators are
// not considered.
func AreEqual(a, b *Structure) bool {
	if a == b {
		return true
	}
	if a.elementCount != b.elementCount || len(a.units) != len(b.units) {
		return false
	}
	for i, u := range a.units {
		v := b.units[i]
		if u.id != v.id || len(u.elements) != len(v.elements) {
			return false
		}
		for j, e := range u.elements {
			if v.elements[j] != e {
				return false
			}
		}
	}
	return true
}

// elementsHash returns the xxhash of the elements folded to 32 bits.
func elementsHash(elements []int) int32 {
	d := xxhash.New()
	var buf [8]byte
	for _, e := range elements {
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		d.Write(buf[:])
	}
	h := d.Sum64()
	return int32(h ^ (h >> 32))
}

func hash1(h int32) int32 {
	a := h ^ (h >> 4)
	a = (a ^ -0x21524111) + (a << 5) //0xdeadbeef as an int32
	a ^= a >> 11
	return a
}

// ElementLocation is an element of a structure: its unit and its model index.
type ElementLocation struct {
	Unit    *Unit
	Element int
}

// ElementIterator goes over the elements of a structure in unit order, and then in
// element order. Units without elements are skipped. It is not safe for concurrent use.
type ElementIterator struct {
	units []*Unit
	unit  int
	elem  int
}

// Next advances the iterator and returns false when there are no more elements.
func (I *ElementIterator) Next() bool {
	for I.unit < len(I.units) {
		I.elem++
		if I.elem < len(I.units[I.unit].elements) {
			return true
		}
		I.unit++
		I.elem = -1
	}
	return false
}

// Location returns the current element. It must only be called after Next returned true.
func (I *ElementIterator) Location() ElementLocation {
	u := I.units[I.unit]
	return ElementLocation{Unit: u, Element: u.elements[I.elem]}
}
