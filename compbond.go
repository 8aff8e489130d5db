/*
 * compbond.go, part of biostruct.
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
	"sort"
	"strings"

	"go.uber.org/zap"
)

// BondInfo is the order and nature of a template bond.
type BondInfo struct {
	Order int
	Flags LinkFlag
}

// ComponentBondEntry is the bond table of one chemical component: a
// symmetric map atom name -> atom name -> bond.
type ComponentBondEntry struct {
	ID    string
	bonds map[string]map[string]BondInfo
}

// NewComponentBondEntry returns an empty entry for the component id.
func NewComponentBondEntry(id string) *ComponentBondEntry {
	return &ComponentBondEntry{ID: id, bonds: make(map[string]map[string]BondInfo)}
}

func (E *ComponentBondEntry) set(a, b string, info BondInfo) {
	m, ok := E.bonds[a]
	if !ok {
		m = make(map[string]BondInfo)
		E.bonds[a] = m
	}
	if _, ok := m[b]; !ok {
		m[b] = info
	}
}

// Add adds a bond between the atoms a and b, in both directions. If the bond
// is already present, the old value is kept.
func (E *ComponentBondEntry) Add(a, b string, order int, flags LinkFlag) {
	info := BondInfo{Order: order, Flags: flags}
	E.set(a, b, info)
	E.set(b, a, info)
}

// Bond returns the bond between a and b, and false if they are not bonded.
func (E *ComponentBondEntry) Bond(a, b string) (BondInfo, bool) {
	info, ok := E.bonds[a][b]
	return info, ok
}

// Partners returns the names of the atoms bonded to a, sorted.
func (E *ComponentBondEntry) Partners(a string) []string {
	m := E.bonds[a]
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// AtomNames returns the names of all the atoms with at least one bond, sorted.
func (E *ComponentBondEntry) AtomNames() []string {
	ret := make([]string, 0, len(E.bonds))
	for k := range E.bonds {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// ComponentBond maps chemical component ids to their bond tables.
type ComponentBond struct {
	entries map[string]*ComponentBondEntry
	ids     []string
}

// NewComponentBond returns an empty ComponentBond
func NewComponentBond() *ComponentBond {
	return &ComponentBond{entries: make(map[string]*ComponentBondEntry)}
}

// AddEntry starts a new entry for the component id, replacing any previous one.
func (C *ComponentBond) AddEntry(id string) *ComponentBondEntry {
	e := NewComponentBondEntry(id)
	if _, ok := C.entries[id]; !ok {
		C.ids = append(C.ids, id)
	}
	C.entries[id] = e
	return e
}

// Entry returns the entry for the component, or nil.
func (C *ComponentBond) Entry(id string) *ComponentBondEntry {
	return C.entries[id]
}

// IDs returns the component ids in the order they were first added.
func (C *ComponentBond) IDs() []string {
	ret := make([]string, len(C.ids))
	copy(ret, C.ids)
	return ret
}

// Len returns the number of components.
func (C *ComponentBond) Len() int {
	return len(C.entries)
}

// ComponentBondFromModel returns the template bonds of the model, or nil if the model is not
// from an mmCIF source or its chem_comp_bond table is empty. The rows of each component
// are expected to be contiguous. The result is computed once per model.
func ComponentBondFromModel(m *Model) *ComponentBond {
	if m == nil {
		panic(ErrNilModel)
	}
	m.props.compBondOnce.Do(func() {
		m.props.compBond = componentBondFromModel(m)
	})
	return m.props.compBond
}

func componentBondFromModel(m *Model) *ComponentBond {
	if m.Source.Kind != FormatMMCIF {
		return nil
	}
	t := &m.Source.ChemCompBond
	if t.Rows == 0 {
		return nil
	}
	cb := NewComponentBond()
	entry := cb.AddEntry(strValue(t.CompID, 0))
	for i := 0; i < t.Rows; i++ {
		id := strValue(t.CompID, i)
		if entry.ID != id {
			entry = cb.AddEntry(id)
		}
		flags := LinkCovalent
		if strValue(t.AromaticFlag, i) == "Y" {
			flags |= LinkAromatic
		}
		entry.Add(strValue(t.AtomID1, i), strValue(t.AtomID2, i), componentBondOrder(strValue(t.ValueOrder, i)), flags)
	}
	Logger().Debug("chem_comp_bond read", zap.String("entry", m.Entry), zap.Int("rows", t.Rows), zap.Int("components", cb.Len()))
	return cb
}

func componentBondOrder(token string) int {
	switch strings.ToLower(token) {
	case "doub", "delo":
		return 2
	case "trip":
		return 3
	case "quad":
		return 4
	}
	return 1
}
