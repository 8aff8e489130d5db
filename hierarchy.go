/*
 * hierarchy.go, part of biostruct.
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

import "sort"

// Segmentation splits a range of indexes [0, N) into consecutive segments.
// Segment i spans [Offsets[i], Offsets[i+1]).
type Segmentation struct {
	Offsets []int
}

// Count returns the number of segments
func (S Segmentation) Count() int {
	if len(S.Offsets) == 0 {
		return 0
	}
	return len(S.Offsets) - 1
}

// Segment returns the first index of the segment i and the index after the last.
func (S Segmentation) Segment(i int) (int, int) {
	return S.Offsets[i], S.Offsets[i+1]
}

// IndexOf returns the segment containing the index, or -1.
func (S Segmentation) IndexOf(index int) int {
	n := S.Count()
	if n == 0 || index < S.Offsets[0] || index >= S.Offsets[n] {
		return -1
	}
	//first offset greater than index, minus one.
	return sort.SearchInts(S.Offsets, index+1) - 1
}

// AtomTable contains the per-atom data of an atomic hierarchy.
type AtomTable struct {
	Name       []string //label_atom_id
	AuthName   []string
	TypeSymbol []string
	AltID      []string
}

// ResidueTable contains the per-residue data of an atomic hierarchy.
type ResidueTable struct {
	CompID    []string
	SeqID     []int
	AuthSeqID []int
	InsCode   []string
}

// ChainTable contains the per-chain data of an atomic hierarchy.
type ChainTable struct {
	EntityID   []string
	AsymID     []string //label_asym_id
	AuthAsymID []string
}

type residueKey struct {
	entity, comp, asym string
	seq                int
	ins                string
}

// AtomicHierarchy is the chain / residue / atom organization of a model.
// The atoms of a residue, and the residues of a chain, are contiguous.
type AtomicHierarchy struct {
	Atoms    AtomTable
	Residues ResidueTable
	Chains   ChainTable

	ResidueAtomSegments Segmentation
	ChainAtomSegments   Segmentation

	residueOfAtom []int
	chainOfAtom   []int
	keys          map[residueKey]int
	authKeys      map[residueKey]int
	entityByAsym  map[string]string
}

// AtomCount returns the number of atoms in the hierarchy
func (H *AtomicHierarchy) AtomCount() int {
	return len(H.Atoms.Name)
}

// ResidueCount returns the number of residues in the hierarchy
func (H *AtomicHierarchy) ResidueCount() int {
	return len(H.Residues.CompID)
}

// ChainCount returns the number of chains in the hierarchy
func (H *AtomicHierarchy) ChainCount() int {
	return len(H.Chains.AsymID)
}

// ResidueIndex returns the residue the atom belongs to.
func (H *AtomicHierarchy) ResidueIndex(atom int) int {
	return H.residueOfAtom[atom]
}

// ChainIndex returns the chain the atom belongs to.
func (H *AtomicHierarchy) ChainIndex(atom int) int {
	return H.chainOfAtom[atom]
}

// FindEntityIDByAsymID returns the entity of the chain with the given label_asym_id,
// or an empty string if there is no such chain.
func (H *AtomicHierarchy) FindEntityIDByAsymID(asym string) string {
	return H.entityByAsym[asym]
}

// FindResidueKey returns the index of the residue identified by the arguments, or -1
// if it is not found.
func (H *AtomicHierarchy) FindResidueKey(entity, comp, asym string, seq int, ins string) int {
	if i, ok := H.keys[residueKey{entity, comp, asym, seq, ins}]; ok {
		return i
	}
	return -1
}

// FindResidueKeyByAuthSeq is FindResidueKey with the author sequence number instead of
// label_seq_id. Non-polymer residues (waters, ions, ligands) have no label_seq_id, so this
// is the only way to tell apart several of them in one chain.
func (H *AtomicHierarchy) FindResidueKeyByAuthSeq(entity, comp, asym string, authSeq int, ins string) int {
	if i, ok := H.authKeys[residueKey{entity, comp, asym, authSeq, ins}]; ok {
		return i
	}
	return -1
}

// FindAtomIndexByLabelName returns the index of the atom with the given name in
// the residue, or -1. An empty alt matches any alternate location.
func (H *AtomicHierarchy) FindAtomIndexByLabelName(residue int, name, alt string) int {
	if residue < 0 || residue >= H.ResidueAtomSegments.Count() {
		return -1
	}
	start, end := H.ResidueAtomSegments.Segment(residue)
	for i := start; i < end; i++ {
		if H.Atoms.Name[i] == name && (alt == "" || H.Atoms.AltID[i] == alt) {
			return i
		}
	}
	return -1
}

// RepresentativeAtom returns the CA atom of the residue, or its first atom if
// it has no CA.
func (H *AtomicHierarchy) RepresentativeAtom(residue int) int {
	if i := H.FindAtomIndexByLabelName(residue, "CA", ""); i >= 0 {
		return i
	}
	start, end := H.ResidueAtomSegments.Segment(residue)
	if start == end {
		return -1
	}
	return start
}

// AtomRecord is the data for one atom, used to build a hierarchy
type AtomRecord struct {
	EntityID   string
	AsymID     string
	AuthAsymID string
	CompID     string
	SeqID      int
	AuthSeqID  int
	InsCode    string
	Name       string
	AuthName   string
	TypeSymbol string
	AltID      string
}

// AtomicHierarchyBuilder builds an AtomicHierarchy from atom records, given in file order.
// A new chain starts when the entity or the asym id changes, a new residue starts when the
// component, label or author sequence id, or insertion code change, or a new chain starts.
type AtomicHierarchyBuilder struct {
	h    *AtomicHierarchy
	last AtomRecord
}

// NewAtomicHierarchyBuilder returns a builder with room for n atoms.
func NewAtomicHierarchyBuilder(n int) *AtomicHierarchyBuilder {
	h := &AtomicHierarchy{
		keys:         make(map[residueKey]int),
		authKeys:     make(map[residueKey]int),
		entityByAsym: make(map[string]string),
	}
	h.Atoms.Name = make([]string, 0, n)
	h.residueOfAtom = make([]int, 0, n)
	h.chainOfAtom = make([]int, 0, n)
	return &AtomicHierarchyBuilder{h: h}
}

// AddAtom adds an atom to the hierarchy and returns the index of the atom.
func (B *AtomicHierarchyBuilder) AddAtom(r AtomRecord) int {
	h := B.h
	index := len(h.Atoms.Name)
	newChain := index == 0 || r.EntityID != B.last.EntityID || r.AsymID != B.last.AsymID
	newRes := newChain || r.CompID != B.last.CompID || r.SeqID != B.last.SeqID || r.AuthSeqID != B.last.AuthSeqID || r.InsCode != B.last.InsCode
	if newChain {
		h.Chains.EntityID = append(h.Chains.EntityID, r.EntityID)
		h.Chains.AsymID = append(h.Chains.AsymID, r.AsymID)
		h.Chains.AuthAsymID = append(h.Chains.AuthAsymID, r.AuthAsymID)
		h.ChainAtomSegments.Offsets = append(h.ChainAtomSegments.Offsets, index)
		if _, ok := h.entityByAsym[r.AsymID]; !ok {
			h.entityByAsym[r.AsymID] = r.EntityID
		}
	}
	if newRes {
		ri := len(h.Residues.CompID)
		h.Residues.CompID = append(h.Residues.CompID, r.CompID)
		h.Residues.SeqID = append(h.Residues.SeqID, r.SeqID)
		h.Residues.AuthSeqID = append(h.Residues.AuthSeqID, r.AuthSeqID)
		h.Residues.InsCode = append(h.Residues.InsCode, r.InsCode)
		h.ResidueAtomSegments.Offsets = append(h.ResidueAtomSegments.Offsets, index)
		k := residueKey{r.EntityID, r.CompID, r.AsymID, r.SeqID, r.InsCode}
		if _, ok := h.keys[k]; !ok {
			h.keys[k] = ri
		}
		k.seq = r.AuthSeqID
		if _, ok := h.authKeys[k]; !ok {
			h.authKeys[k] = ri
		}
	}
	h.Atoms.Name = append(h.Atoms.Name, r.Name)
	h.Atoms.AuthName = append(h.Atoms.AuthName, r.AuthName)
	h.Atoms.TypeSymbol = append(h.Atoms.TypeSymbol, NormalizeSymbol(r.TypeSymbol))
	h.Atoms.AltID = append(h.Atoms.AltID, r.AltID)
	h.residueOfAtom = append(h.residueOfAtom, len(h.Residues.CompID)-1)
	h.chainOfAtom = append(h.chainOfAtom, len(h.Chains.AsymID)-1)
	B.last = r
	return index
}

// Hierarchy closes the segmentations and returns the hierarchy. The builder
// should not be used afterwards.
func (B *AtomicHierarchyBuilder) Hierarchy() *AtomicHierarchy {
	h := B.h
	n := len(h.Atoms.Name)
	h.ChainAtomSegments.Offsets = append(h.ChainAtomSegments.Offsets, n)
	h.ResidueAtomSegments.Offsets = append(h.ResidueAtomSegments.Offsets, n)
	B.h = nil
	return h
}
