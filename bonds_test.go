/*
 * bonds_test.go, part of biostruct.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rmera/biostruct/cif"
)

func TestStructConn(Te *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	m := readModels(Te, "testdata/small.cif")[0]
	sc := StructConnFromModel(m)
	require.NotNil(Te, sc)
	//the covale row has no atom name for its second partner, and the
	//mismat row has no second partner at all.
	require.Len(Te, sc.Entries(), 3)
	assert.Same(Te, sc, StructConnFromModel(m))

	disulf := sc.Entries()[0]
	assert.Equal(Te, LinkCovalent|LinkSulfide, disulf.Flags)
	assert.Equal(Te, 1, disulf.Order)
	assert.InDelta(Te, 2.03, disulf.Distance, 1e-9)
	assert.Equal(Te, []StructConnPartner{{0, 4, "1_555"}, {2, 12, "1_555"}}, disulf.Partners)

	metalc := sc.Entries()[1]
	assert.Equal(Te, LinkMetallicCoordination, metalc.Flags)
	assert.Equal(Te, 13, metalc.Partners[1].AtomIndex)

	hydrog := sc.Entries()[2]
	assert.Equal(Te, LinkHydrogen, hydrog.Flags)
	assert.Equal(Te, 2, hydrog.Order)
	assert.Equal(Te, IdentitySymmetry, hydrog.Partners[1].Symmetry)

	assert.Equal(Te, []*StructConnEntry{disulf}, sc.ResidueEntries(0, 2))
	assert.Equal(Te, []*StructConnEntry{disulf}, sc.ResidueEntries(2, 0))
	assert.Equal(Te, []*StructConnEntry{hydrog}, sc.ResidueEntries(1, 2))
	assert.Empty(Te, sc.ResidueEntries(0, 1))
	assert.Equal(Te, []*StructConnEntry{disulf, metalc}, sc.AtomEntries(4))
	assert.Empty(Te, sc.AtomEntries(0))

	entries := logs.FilterMessage("struct_conn resolved").All()
	require.Len(Te, entries, 1)
	assert.Equal(Te, int64(2), entries[0].ContextMap()["dropped"])
}

func TestStructConnPartialPartner(Te *testing.T) {
	//partner 1 resolves, partner 2 has an empty atom name: no entry from the row.
	src := strings.Replace(smallStructConnOnly, "B CYS 1 SG", "B CYS 1 ?", 1)
	f, err := cif.Read(strings.NewReader(src))
	require.NoError(Te, err)
	models, err := ModelsFromCIF(f.Blocks[0])
	require.NoError(Te, err)
	sc := StructConnFromModel(models[0])
	require.NotNil(Te, sc)
	assert.Empty(Te, sc.Entries())
	assert.Empty(Te, sc.AtomEntries(0))
}

const smallStructConnOnly = `data_SC
loop_
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_entity_id
_atom_site.label_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
1 S SG CYS A 1 1 0.0 0.0 0.0
2 S SG CYS B 1 1 2.0 0.0 0.0
loop_
_struct_conn.id
_struct_conn.conn_type_id
_struct_conn.ptnr1_label_asym_id
_struct_conn.ptnr1_label_comp_id
_struct_conn.ptnr1_label_seq_id
_struct_conn.ptnr1_label_atom_id
_struct_conn.ptnr2_label_asym_id
_struct_conn.ptnr2_label_comp_id
_struct_conn.ptnr2_label_seq_id
_struct_conn.ptnr2_label_atom_id
disulf1 disulf A CYS 1 SG B CYS 1 SG
`

func TestStructConnMissingColumns(Te *testing.T) {
	f, err := cif.Read(strings.NewReader(smallStructConnOnly))
	require.NoError(Te, err)
	m, err := ModelsFromCIF(f.Blocks[0])
	require.NoError(Te, err)
	sc := StructConnFromModel(m[0])
	require.Len(Te, sc.Entries(), 1)
	e := sc.Entries()[0]
	//no symmetry, order or distance columns
	assert.Equal(Te, IdentitySymmetry, e.Partners[0].Symmetry)
	assert.Equal(Te, 1, e.Order)
	assert.Equal(Te, 0.0, e.Distance)
	assert.Equal(Te, LinkCovalent|LinkSulfide, e.Flags)
}

func TestComponentBond(Te *testing.T) {
	m := readModels(Te, "testdata/small.cif")[0]
	cb := ComponentBondFromModel(m)
	require.NotNil(Te, cb)
	assert.Same(Te, cb, ComponentBondFromModel(m))
	assert.Equal(Te, []string{"ALA", "CYS", "PHE"}, cb.IDs())
	ala := cb.Entry("ALA")
	require.NotNil(Te, ala)
	b, ok := ala.Bond("C", "O")
	assert.True(Te, ok)
	assert.Equal(Te, BondInfo{Order: 2, Flags: LinkCovalent}, b)
	b2, ok := ala.Bond("O", "C")
	assert.True(Te, ok)
	assert.Equal(Te, b, b2)
	assert.Equal(Te, []string{"C", "CB", "N"}, ala.Partners("CA"))
	assert.Equal(Te, []string{"C", "CA", "CB", "N", "O"}, ala.AtomNames())
	_, ok = ala.Bond("N", "O")
	assert.False(Te, ok)
	phe, _ := cb.Entry("PHE").Bond("CD1", "CG")
	assert.Equal(Te, BondInfo{Order: 2, Flags: LinkCovalent | LinkAromatic}, phe)
	assert.Nil(Te, cb.Entry("GLY"))
}

func TestComponentBondEntryAdd(Te *testing.T) {
	cb := NewComponentBond()
	e := cb.AddEntry("ALA")
	e.Add("N", "CA", 1, LinkCovalent)
	ab, ok := e.Bond("N", "CA")
	require.True(Te, ok)
	ba, ok := e.Bond("CA", "N")
	require.True(Te, ok)
	assert.Equal(Te, ab, ba)
	assert.Equal(Te, BondInfo{Order: 1, Flags: LinkCovalent}, ab)
	//the first value is kept
	e.Add("CA", "N", 2, LinkCovalent|LinkAromatic)
	ab, _ = e.Bond("N", "CA")
	assert.Equal(Te, 1, ab.Order)
	assert.Equal(Te, 1, cb.Len())
	cb.AddEntry("ALA")
	assert.Equal(Te, []string{"ALA"}, cb.IDs())
	_, ok = cb.Entry("ALA").Bond("N", "CA")
	assert.False(Te, ok)
}

func TestCrossLinkRestraintTable(Te *testing.T) {
	m := readModels(Te, "testdata/small.cif")[0]
	xl := CrossLinkRestraintsFromModel(m)
	require.NotNil(Te, xl)
	assert.Same(Te, xl, CrossLinkRestraintsFromModel(m))
	assert.Equal(Te, 2, xl.RowCount())
	r := xl.Row(1)
	assert.Equal(Te, "upper bound", r.RestraintType)
	assert.Equal(Te, "by-residue", r.Granularity)
	assert.Equal(Te, 30.0, r.DistanceThreshold)
	assert.Equal(Te, 0.1, r.Psi)
	assert.Equal(Te, 1.5, r.Sigma1)
	assert.Equal(Te, 2.5, r.Sigma2)
	assert.Equal(Te, 0.0, xl.Row(0).Sigma1)
	assert.Equal(Te, "B", r.Partners[1].AsymID)

	//CA of CYS A1 is in both restraints, CA of ALA A2 only in the by-atom one and
	//CA of CYS B1 in the by-residue one.
	assert.Equal(Te, []int{0, 1}, xl.IndicesByElement(1, Atomic))
	assert.Equal(Te, []int{0}, xl.IndicesByElement(6, Atomic))
	assert.Equal(Te, []int{1}, xl.IndicesByElement(11, Atomic))
	assert.Empty(Te, xl.IndicesByElement(0, Atomic))
	assert.Empty(Te, xl.IndicesByElement(1, Spheres))
	assert.Nil(Te, xl.IndicesByElement(1, UnitKind(7)))
}

func TestCrossLinkCoarse(Te *testing.T) {
	m := readModels(Te, "testdata/coarse.cif")[0]
	xl := CrossLinkRestraintsFromModel(m)
	require.NotNil(Te, xl)
	assert.Equal(Te, []int{0}, xl.IndicesByElement(0, Spheres))
	assert.Equal(Te, []int{1}, xl.IndicesByElement(1, Spheres))
	assert.Equal(Te, []int{0}, xl.IndicesByElement(2, Spheres))
	assert.Empty(Te, xl.IndicesByElement(3, Spheres))
	assert.Equal(Te, []int{1}, xl.IndicesByElement(4, Spheres))
	assert.Empty(Te, xl.IndicesByElement(0, Gaussians))
}

func TestLinkFlag(Te *testing.T) {
	f := LinkCovalent | LinkSulfide
	assert.True(Te, f.Has(LinkCovalent))
	assert.False(Te, f.Has(LinkCovalent|LinkHydrogen))
	assert.Equal(Te, "covalent|sulfide", f.String())
	assert.Equal(Te, "none", LinkNone.String())
	assert.Equal(Te, LinkNone, structConnFlags("mismat"))
	assert.Equal(Te, LinkCovalent, structConnFlags("COVALE_SUGAR"))
	assert.Equal(Te, LinkIon, structConnFlags("saltbr"))
	assert.Equal(Te, 4, structConnOrder("QUAD"))
	assert.Equal(Te, 1, structConnOrder("delo"))
	assert.Equal(Te, 2, componentBondOrder("delo"))
}

const watersStructConn = `data_WAT
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_entity_id
_atom_site.label_seq_id
_atom_site.auth_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
HETATM 1 ZN ZN ZN  B 1 . 201  0.0 0.0 0.0
HETATM 2 O  O  HOH C 2 . 301  7.9 0.0 0.0
HETATM 3 O  O  HOH C 2 . 302  0.0 2.1 0.0
loop_
_struct_conn.id
_struct_conn.conn_type_id
_struct_conn.ptnr1_label_asym_id
_struct_conn.ptnr1_label_comp_id
_struct_conn.ptnr1_label_seq_id
_struct_conn.ptnr1_auth_seq_id
_struct_conn.ptnr1_label_atom_id
_struct_conn.ptnr2_label_asym_id
_struct_conn.ptnr2_label_comp_id
_struct_conn.ptnr2_label_seq_id
_struct_conn.ptnr2_auth_seq_id
_struct_conn.ptnr2_label_atom_id
_struct_conn.pdbx_dist_value
metalc1 metalc B ZN . 201 ZN C HOH . 302 O 2.1
`

// waters share label_seq_id '.', so only the author number tells them apart.
func TestStructConnWaters(Te *testing.T) {
	f, err := cif.Read(strings.NewReader(watersStructConn))
	require.NoError(Te, err)
	models, err := ModelsFromCIF(f.Blocks[0])
	require.NoError(Te, err)
	h := models[0].Atomic
	assert.Equal(Te, 3, h.ResidueCount())
	assert.Equal(Te, []int{0, 1, 2, 3}, h.ResidueAtomSegments.Offsets)
	assert.Equal(Te, 2, h.FindResidueKeyByAuthSeq("2", "HOH", "C", 302, ""))
	assert.Equal(Te, -1, h.FindResidueKeyByAuthSeq("2", "HOH", "C", 303, ""))
	//label lookup can only give the first water
	assert.Equal(Te, 1, h.FindResidueKey("2", "HOH", "C", 0, ""))

	sc := StructConnFromModel(models[0])
	require.NotNil(Te, sc)
	require.Len(Te, sc.Entries(), 1)
	e := sc.Entries()[0]
	assert.Equal(Te, LinkMetallicCoordination, e.Flags)
	assert.Equal(Te, []StructConnPartner{{0, 0, IdentitySymmetry}, {2, 2, IdentitySymmetry}}, e.Partners)
	assert.Empty(Te, sc.AtomEntries(1))
	assert.Equal(Te, []*StructConnEntry{e}, sc.ResidueEntries(2, 0))
}
