/*
 * crosslink.go, part of biostruct.
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
	"strings"

	"go.uber.org/zap"
)

// GranularityByAtom is the model_granularity of restraints defined between atoms.
const GranularityByAtom = "by-atom"

// CrossLinkPartner is one end of a cross-link restraint.
type CrossLinkPartner struct {
	EntityID string
	AsymID   string
	SeqID    int
	CompID   string
	AtomID   string
}

// CrossLinkRestraint is the data of one row of the ihm_cross_link_restraint table.
type CrossLinkRestraint struct {
	Partners          [2]CrossLinkPartner
	Granularity       string
	RestraintType     string
	DistanceThreshold float64
	Psi               float64
	Sigma1            float64
	Sigma2            float64
}

// CrossLinkRestraintTable contains the cross-link restraints of a model, and the rows
// referencing each element (atom, sphere or gaussian) of the model.
type CrossLinkRestraintTable struct {
	rows      []CrossLinkRestraint
	byElement [3]map[int][]int //indexed by UnitKind
}

// RowCount returns the number of restraints in the table.
func (T *CrossLinkRestraintTable) RowCount() int {
	return len(T.rows)
}

// Row returns the restraint in row i
func (T *CrossLinkRestraintTable) Row(i int) CrossLinkRestraint {
	return T.rows[i]
}

// IndicesByElement returns the rows referencing the element of the given kind, in
// increasing order. The slice should not be modified.
func (T *CrossLinkRestraintTable) IndicesByElement(element int, kind UnitKind) []int {
	if kind < Atomic || kind > Gaussians {
		return nil
	}
	return T.byElement[kind][element]
}

func (T *CrossLinkRestraintTable) add(kind UnitKind, element, row int) {
	m := T.byElement[kind]
	l := m[element]
	//both ends of a restraint can map to the same element
	if len(l) > 0 && l[len(l)-1] == row {
		return
	}
	m[element] = append(l, row)
}

// CrossLinkRestraintsFromModel returns the cross-link restraints of the model, or nil if
// the model is not from an mmCIF source or its ihm_cross_link_restraint table is empty.
// The result is computed once per model.
func CrossLinkRestraintsFromModel(m *Model) *CrossLinkRestraintTable {
	if m == nil {
		panic(ErrNilModel)
	}
	m.props.crossLinkOnce.Do(func() {
		m.props.crossLinks = crossLinksFromModel(m)
	})
	return m.props.crossLinks
}

func crossLinksFromModel(m *Model) *CrossLinkRestraintTable {
	if m.Source.Kind != FormatMMCIF {
		return nil
	}
	t := &m.Source.CrossLinks
	if t.Rows == 0 {
		return nil
	}
	ret := &CrossLinkRestraintTable{rows: make([]CrossLinkRestraint, t.Rows)}
	for i := range ret.byElement {
		ret.byElement[i] = make(map[int][]int)
	}
	mapped := 0
	for i := 0; i < t.Rows; i++ {
		r := CrossLinkRestraint{
			Granularity:       strings.ToLower(strValue(t.Granularity, i)),
			RestraintType:     strValue(t.RestraintType, i),
			DistanceThreshold: floatValue(t.DistanceThreshold, i),
			Psi:               floatValue(t.Psi, i),
			Sigma1:            floatValue(t.Sigma1, i),
			Sigma2:            floatValue(t.Sigma2, i),
		}
		for j, p := range t.Partners {
			r.Partners[j] = CrossLinkPartner{
				EntityID: strValue(p.EntityID, i),
				AsymID:   strValue(p.AsymID, i),
				SeqID:    intValue(p.SeqID, i),
				CompID:   strValue(p.CompID, i),
				AtomID:   strValue(p.AtomID, i),
			}
		}
		ret.rows[i] = r
		for _, p := range r.Partners {
			if ret.mapPartner(m, i, r.Granularity, p) {
				mapped++
			}
		}
	}
	Logger().Debug("cross-link restraints mapped", zap.String("entry", m.Entry), zap.Int("model", m.ModelNum),
		zap.Int("rows", t.Rows), zap.Int("mapped partners", mapped))
	return ret
}

// mapPartner adds the row to every element the partner maps to, and returns
// true if the partner mapped to at least one element.
func (T *CrossLinkRestraintTable) mapPartner(m *Model, row int, granularity string, p CrossLinkPartner) bool {
	h := m.Atomic
	entity := p.EntityID
	if entity == "" {
		entity = h.FindEntityIDByAsymID(p.AsymID)
	}
	ok := false
	residue := h.FindResidueKey(entity, p.CompID, p.AsymID, p.SeqID, "")
	if granularity == GranularityByAtom {
		if residue < 0 || p.AtomID == "" {
			return false
		}
		atom := h.FindAtomIndexByLabelName(residue, p.AtomID, "")
		if atom < 0 {
			return false
		}
		T.add(Atomic, atom, row)
		return true
	}
	if residue >= 0 {
		if atom := h.RepresentativeAtom(residue); atom >= 0 {
			T.add(Atomic, atom, row)
			ok = true
		}
	}
	for _, kind := range []UnitKind{Spheres, Gaussians} {
		els := m.Coarse.Elements(kind)
		for i := 0; i < els.Count(); i++ {
			if els.Covers(i, p.AsymID, p.SeqID) {
				T.add(kind, i, row)
				ok = true
			}
		}
	}
	return ok
}
