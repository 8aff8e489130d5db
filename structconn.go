/*
 * structconn.go, part of biostruct.
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
	"sync"

	"go.uber.org/zap"

	"github.com/rmera/biostruct/column"
)

// IdentitySymmetry is the symmetry code of the identity operator.
const IdentitySymmetry = "1_555"

// StructConnPartner is one end of an explicit connection.
type StructConnPartner struct {
	ResidueIndex int
	AtomIndex    int
	Symmetry     string
}

// StructConnEntry is an explicit connection between atoms, with exactly two partners.
type StructConnEntry struct {
	Distance float64
	Order    int
	Flags    LinkFlag
	Partners []StructConnPartner
}

type residuePair struct {
	a, b int
}

func resKey(rA, rB int) residuePair {
	if rA < rB {
		return residuePair{rA, rB}
	}
	return residuePair{rB, rA}
}

// StructConn contains the explicit connections of a model, from the struct_conn table.
// Lookups by residue pair and by atom build their indexes on first use.
type StructConn struct {
	entries []*StructConnEntry

	resOnce   sync.Once
	resIndex  map[residuePair][]*StructConnEntry
	atomOnce  sync.Once
	atomIndex map[int][]*StructConnEntry
}

// NewStructConn returns a StructConn with the given entries.
func NewStructConn(entries []*StructConnEntry) *StructConn {
	return &StructConn{entries: entries}
}

// Entries returns all the entries. The slice should not be modified.
func (S *StructConn) Entries() []*StructConnEntry {
	return S.entries
}

func (S *StructConn) residuePairIndex() map[residuePair][]*StructConnEntry {
	S.resOnce.Do(func() {
		S.resIndex = make(map[residuePair][]*StructConnEntry)
		for _, e := range S.entries {
			ps := e.Partners
			l := len(ps)
			for i := 0; i < l-1; i++ {
				for j := i + 1; j < l; j++ {
					key := resKey(ps[i].ResidueIndex, ps[j].ResidueIndex)
					S.resIndex[key] = append(S.resIndex[key], e)
				}
			}
		}
	})
	return S.resIndex
}

func (S *StructConn) atomEntryIndex() map[int][]*StructConnEntry {
	S.atomOnce.Do(func() {
		S.atomIndex = make(map[int][]*StructConnEntry)
		for _, e := range S.entries {
			for _, p := range e.Partners {
				S.atomIndex[p.AtomIndex] = append(S.atomIndex[p.AtomIndex], e)
			}
		}
	})
	return S.atomIndex
}

// ResidueEntries returns the entries connecting residues rA and rB, in any order.
func (S *StructConn) ResidueEntries(rA, rB int) []*StructConnEntry {
	return S.residuePairIndex()[resKey(rA, rB)]
}

// AtomEntries returns the entries in which the atom takes part.
func (S *StructConn) AtomEntries(atom int) []*StructConnEntry {
	return S.atomEntryIndex()[atom]
}

// StructConnFromModel returns the explicit connections of the model or nil if the
// model is not from an mmCIF source or its struct_conn table is empty.
// The result is computed once per model.
func StructConnFromModel(m *Model) *StructConn {
	if m == nil {
		panic(ErrNilModel)
	}
	m.props.structConnOnce.Do(func() {
		m.props.structConn = structConnFromModel(m)
	})
	return m.props.structConn
}

func structConnFromModel(m *Model) *StructConn {
	if m.Source.Kind != FormatMMCIF {
		return nil
	}
	t := &m.Source.StructConn
	if t.Rows == 0 {
		return nil
	}
	entries := make([]*StructConnEntry, 0, t.Rows)
	dropped := 0
	for i := 0; i < t.Rows; i++ {
		partners := make([]StructConnPartner, 0, 2)
		for _, p := range t.Partners {
			if sp, ok := resolvePartner(m, i, &p); ok {
				partners = append(partners, sp)
			}
		}
		if len(partners) < 2 {
			dropped++
			continue
		}
		entries = append(entries, &StructConnEntry{
			Distance: floatValue(t.DistValue, i),
			Order:    structConnOrder(strValue(t.ValueOrder, i)),
			Flags:    structConnFlags(strValue(t.ConnTypeID, i)),
			Partners: partners,
		})
	}
	Logger().Debug("struct_conn resolved", zap.String("entry", m.Entry), zap.Int("model", m.ModelNum),
		zap.Int("rows", t.Rows), zap.Int("entries", len(entries)), zap.Int("dropped", dropped))
	return NewStructConn(entries)
}

func resolvePartner(m *Model, row int, p *StructConnPartnerColumns) (StructConnPartner, bool) {
	if p.AsymID == nil || p.AsymID.ValueKind(row) != column.Present {
		return StructConnPartner{}, false
	}
	h := m.Atomic
	asym := p.AsymID.Value(row)
	entity, comp, ins := h.FindEntityIDByAsymID(asym), strValue(p.CompID, row), strValue(p.InsCode, row)
	var residue int
	//non-polymer partners have no label_seq_id
	if !present(p.SeqID, row) && present(p.AuthSeqID, row) {
		residue = h.FindResidueKeyByAuthSeq(entity, comp, asym, p.AuthSeqID.Value(row), ins)
	} else {
		residue = h.FindResidueKey(entity, comp, asym, intValue(p.SeqID, row), ins)
	}
	if residue < 0 {
		return StructConnPartner{}, false
	}
	name := strValue(p.AtomID, row)
	//mismat records might have no atom name.
	if name == "" {
		return StructConnPartner{}, false
	}
	atom := h.FindAtomIndexByLabelName(residue, name, strValue(p.AltID, row))
	if atom < 0 {
		return StructConnPartner{}, false
	}
	sym := strValue(p.Symmetry, row)
	if sym == "" {
		sym = IdentitySymmetry
	}
	return StructConnPartner{ResidueIndex: residue, AtomIndex: atom, Symmetry: sym}, true
}

func structConnOrder(token string) int {
	switch strings.ToLower(token) {
	case "doub":
		return 2
	case "trip":
		return 3
	case "quad":
		return 4
	}
	return 1
}

// the helpers below treat a nil column as not present, and give
// the zero value for any row that is not present.

func strValue(c column.Column[string], row int) string {
	if c == nil || c.ValueKind(row) != column.Present {
		return ""
	}
	return c.Value(row)
}

func intValue(c column.Column[int], row int) int {
	if c == nil || c.ValueKind(row) != column.Present {
		return 0
	}
	return c.Value(row)
}

func floatValue(c column.Column[float64], row int) float64 {
	if c == nil || c.ValueKind(row) != column.Present {
		return 0
	}
	return c.Value(row)
}

func present[T any](c column.Column[T], row int) bool {
	return c != nil && c.ValueKind(row) == column.Present
}
