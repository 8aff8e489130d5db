/*
 * fromcif.go, part of biostruct.
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

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/biostruct/cif"
	"github.com/rmera/biostruct/column"
	v3 "github.com/rmera/biostruct/v3"
)

// SourceFromCIF returns the mmCIF source tables of the block.
func SourceFromCIF(b *cif.Block) SourceData {
	sc := b.Category("struct_conn")
	sd := SourceData{Kind: FormatMMCIF}
	sd.StructConn = StructConnTable{
		Rows:       sc.RowCount(),
		ConnTypeID: sc.Str("conn_type_id"),
		ValueOrder: sc.Str("pdbx_value_order"),
		DistValue:  sc.Float("pdbx_dist_value"),
	}
	for i := range sd.StructConn.Partners {
		n := i + 1
		sd.StructConn.Partners[i] = StructConnPartnerColumns{
			AsymID:    sc.Str(fmt.Sprintf("ptnr%d_label_asym_id", n)),
			CompID:    sc.Str(fmt.Sprintf("ptnr%d_label_comp_id", n)),
			SeqID:     sc.Int(fmt.Sprintf("ptnr%d_label_seq_id", n)),
			AuthSeqID: sc.Int(fmt.Sprintf("ptnr%d_auth_seq_id", n)),
			AtomID:    sc.Str(fmt.Sprintf("ptnr%d_label_atom_id", n)),
			AltID:     sc.Str(fmt.Sprintf("pdbx_ptnr%d_label_alt_id", n)),
			InsCode:   sc.Str(fmt.Sprintf("pdbx_ptnr%d_PDB_ins_code", n)),
			Symmetry:  sc.Str(fmt.Sprintf("ptnr%d_symmetry", n)),
		}
	}
	cb := b.Category("chem_comp_bond")
	sd.ChemCompBond = ChemCompBondTable{
		Rows:         cb.RowCount(),
		CompID:       cb.Str("comp_id"),
		AtomID1:      cb.Str("atom_id_1"),
		AtomID2:      cb.Str("atom_id_2"),
		ValueOrder:   cb.Str("value_order"),
		AromaticFlag: cb.Str("pdbx_aromatic_flag"),
	}
	xl := b.Category("ihm_cross_link_restraint")
	sd.CrossLinks = CrossLinkTable{
		Rows:              xl.RowCount(),
		Granularity:       xl.Str("model_granularity"),
		RestraintType:     xl.Str("restraint_type"),
		DistanceThreshold: xl.Float("distance_threshold"),
		Psi:               xl.Float("psi"),
		Sigma1:            xl.Float("sigma_1"),
		Sigma2:            xl.Float("sigma_2"),
	}
	for i := range sd.CrossLinks.Partners {
		n := i + 1
		sd.CrossLinks.Partners[i] = CrossLinkPartnerColumns{
			EntityID: xl.Str(fmt.Sprintf("entity_id_%d", n)),
			AsymID:   xl.Str(fmt.Sprintf("asym_id_%d", n)),
			SeqID:    xl.Int(fmt.Sprintf("seq_id_%d", n)),
			CompID:   xl.Str(fmt.Sprintf("comp_id_%d", n)),
			AtomID:   xl.Str(fmt.Sprintf("atom_id_%d", n)),
		}
	}
	return sd
}

type atomSite struct {
	entity, asym, authAsym, comp, ins, name, authName, symbol, alt column.Column[string]
	seq, authSeq, id, modelNum                                     column.Column[int]
	x, y, z, occ, b                                                column.Column[float64]
}

func newAtomSite(c *cif.Category) *atomSite {
	return &atomSite{
		entity:   c.Str("label_entity_id"),
		asym:     c.Str("label_asym_id"),
		authAsym: c.Str("auth_asym_id"),
		comp:     c.Str("label_comp_id"),
		ins:      c.Str("pdbx_PDB_ins_code"),
		name:     c.Str("label_atom_id"),
		authName: c.Str("auth_atom_id"),
		symbol:   c.Str("type_symbol"),
		alt:      c.Str("label_alt_id"),
		seq:      c.Int("label_seq_id"),
		authSeq:  c.Int("auth_seq_id"),
		id:       c.Int("id"),
		modelNum: c.Int("pdbx_PDB_model_num"),
		x:        c.Float("Cartn_x"),
		y:        c.Float("Cartn_y"),
		z:        c.Float("Cartn_z"),
		occ:      c.Float("occupancy"),
		b:        c.Float("B_iso_or_equiv"),
	}
}

func (A *atomSite) record(row int) AtomRecord {
	return AtomRecord{
		EntityID:   strValue(A.entity, row),
		AsymID:     strValue(A.asym, row),
		AuthAsymID: strValue(A.authAsym, row),
		CompID:     strValue(A.comp, row),
		SeqID:      intValue(A.seq, row),
		AuthSeqID:  intValue(A.authSeq, row),
		InsCode:    strValue(A.ins, row),
		Name:       strValue(A.name, row),
		AuthName:   strValue(A.authName, row),
		TypeSymbol: strValue(A.symbol, row),
		AltID:      strValue(A.alt, row),
	}
}

// ModelsFromCIF returns one model for each pdbx_PDB_model_num in the atom_site table of the
// block, in order of first appearance. Atoms without a model number belong to model 1.
// A block with only coarse elements gives one model, number 1, with no atoms.
// All the models share the source tables of the block.
func ModelsFromCIF(b *cif.Block) ([]*Model, error) {
	sites := b.Category("atom_site")
	coarseOnly := sites.RowCount() == 0 && (b.Category("ihm_sphere_obj_site").RowCount() > 0 || b.Category("ihm_gaussian_obj_site").RowCount() > 0)
	if sites.RowCount() == 0 && !coarseOnly {
		return nil, NewError("no atom_site rows in block "+b.Header, "ModelsFromCIF")
	}
	as := newAtomSite(sites)
	order := make([]int, 0, 1)
	rows := make(map[int][]int)
	if coarseOnly {
		order = append(order, 1)
	}
	for i := 0; i < sites.RowCount(); i++ {
		n := 1
		if as.modelNum.ValueKind(i) == column.Present {
			n = as.modelNum.Value(i)
		}
		if _, ok := rows[n]; !ok {
			order = append(order, n)
		}
		rows[n] = append(rows[n], i)
	}
	source := SourceFromCIF(b)
	models := make([]*Model, 0, len(order))
	for _, n := range order {
		m, err := modelFromRows(b, as, source, n, rows[n])
		if err != nil {
			return nil, errDecorate(err, "ModelsFromCIF")
		}
		models = append(models, m)
	}
	Logger().Debug("models read", zap.String("entry", b.Header), zap.Int("models", len(models)), zap.Int("atoms", sites.RowCount()))
	return models, nil
}

func modelFromRows(b *cif.Block, as *atomSite, source SourceData, num int, rows []int) (*Model, error) {
	hb := NewAtomicHierarchyBuilder(len(rows))
	coords := v3.Zeros(len(rows))
	conf := &Conformation{
		ID:        uuid.New(),
		AtomID:    make([]int, len(rows)),
		Occupancy: make([]float64, len(rows)),
		BFactor:   make([]float64, len(rows)),
		Coords:    coords,
	}
	for i, row := range rows {
		for _, c := range []column.Column[float64]{as.x, as.y, as.z} {
			if c.ValueKind(row) != column.Present {
				return nil, NewError(fmt.Sprintf("atom_site row %d has no coordinates", row), "modelFromRows")
			}
		}
		hb.AddAtom(as.record(row))
		coords.SetVec(i, r3.Vec{X: as.x.Value(row), Y: as.y.Value(row), Z: as.z.Value(row)})
		conf.AtomID[i] = intValue(as.id, row)
		conf.Occupancy[i] = 1
		if as.occ.ValueKind(row) == column.Present {
			conf.Occupancy[i] = as.occ.Value(row)
		}
		conf.BFactor[i] = floatValue(as.b, row)
	}
	coarse := &CoarseHierarchy{
		Spheres:   coarseFromCIF(b.Category("ihm_sphere_obj_site"), num, "Cartn_", "object_radius", ""),
		Gaussians: coarseFromCIF(b.Category("ihm_gaussian_obj_site"), num, "mean_Cartn_", "", "weight"),
	}
	m, err := NewModel(b.Header, num, source, hb.Hierarchy(), conf, coarse)
	if err != nil {
		return nil, errDecorate(err, "modelFromRows")
	}
	return m, nil
}

// coarseFromCIF reads the coarse elements of the category that belong to the model.
// Rows without model_id belong to every model.
func coarseFromCIF(c *cif.Category, num int, coordPrefix, radius, weight string) *CoarseElements {
	n := c.RowCount()
	model := c.Int("model_id")
	entity := c.Str("entity_id")
	asym := c.Str("asym_id")
	seqB := c.Int("seq_id_begin")
	seqE := c.Int("seq_id_end")
	x := c.Float(coordPrefix + "x")
	y := c.Float(coordPrefix + "y")
	z := c.Float(coordPrefix + "z")
	var rad, w column.Column[float64]
	if radius != "" {
		rad = c.Float(radius)
	}
	if weight != "" {
		w = c.Float(weight)
	}
	recs := make([]CoarseRecord, 0, n)
	for i := 0; i < n; i++ {
		if model.ValueKind(i) == column.Present && model.Value(i) != num {
			continue
		}
		r := CoarseRecord{
			EntityID: strValue(entity, i),
			AsymID:   strValue(asym, i),
			SeqBegin: intValue(seqB, i),
			SeqEnd:   intValue(seqE, i),
			Pos:      r3.Vec{X: floatValue(x, i), Y: floatValue(y, i), Z: floatValue(z, i)},
			Radius:   floatValue(rad, i),
			Weight:   floatValue(w, i),
		}
		recs = append(recs, r)
	}
	return NewCoarseElements(recs)
}
