/*
 * model.go, part of biostruct.
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
	"sync"

	"github.com/google/uuid"

	"github.com/rmera/biostruct/column"
)

// Format is the format of the file a model was read from.
type Format int

const (
	FormatUnknown Format = iota
	FormatMMCIF
	FormatPDB
)

func (f Format) String() string {
	switch f {
	case FormatMMCIF:
		return "mmCIF"
	case FormatPDB:
		return "PDB"
	}
	return "unknown"
}

// StructConnPartnerColumns are the columns that identify one partner of a struct_conn record.
type StructConnPartnerColumns struct {
	AsymID    column.Column[string]
	CompID    column.Column[string]
	SeqID     column.Column[int]
	AuthSeqID column.Column[int] //used when SeqID is not present
	AtomID    column.Column[string]
	AltID     column.Column[string]
	InsCode   column.Column[string]
	Symmetry  column.Column[string]
}

// StructConnTable holds the struct_conn columns used for bond inference.
type StructConnTable struct {
	Rows       int
	ConnTypeID column.Column[string]
	ValueOrder column.Column[string]
	DistValue  column.Column[float64]
	Partners   [2]StructConnPartnerColumns
}

// ChemCompBondTable holds the chem_comp_bond columns.
type ChemCompBondTable struct {
	Rows         int
	CompID       column.Column[string]
	AtomID1      column.Column[string]
	AtomID2      column.Column[string]
	ValueOrder   column.Column[string]
	AromaticFlag column.Column[string]
}

// CrossLinkPartnerColumns identify one end of a cross-link restraint.
type CrossLinkPartnerColumns struct {
	EntityID column.Column[string]
	AsymID   column.Column[string]
	SeqID    column.Column[int]
	CompID   column.Column[string]
	AtomID   column.Column[string]
}

// CrossLinkTable holds the ihm_cross_link_restraint columns.
type CrossLinkTable struct {
	Rows              int
	Partners          [2]CrossLinkPartnerColumns
	Granularity       column.Column[string]
	RestraintType     column.Column[string]
	DistanceThreshold column.Column[float64]
	Psi               column.Column[float64]
	Sigma1            column.Column[float64]
	Sigma2            column.Column[float64]
}

// SourceData is the format of the source of a model, and the source tables the derived
// properties are computed from. Tables are only meaningful for mmCIF sources.
type SourceData struct {
	Kind         Format
	StructConn   StructConnTable
	ChemCompBond ChemCompBondTable
	CrossLinks   CrossLinkTable
}

// properties are the derived properties of a model, each computed at most once,
// even when the result is nil.
type properties struct {
	structConnOnce sync.Once
	structConn     *StructConn
	compBondOnce   sync.Once
	compBond       *ComponentBond
	crossLinkOnce  sync.Once
	crossLinks     *CrossLinkRestraintTable
}

// Model is one model of a structure file. A model is immutable after construction, and
// can be shared by many units and structures.
type Model struct {
	ID           uuid.UUID
	Entry        string
	ModelNum     int
	Source       SourceData
	Atomic       *AtomicHierarchy
	Conformation *Conformation
	Coarse       *CoarseHierarchy

	props properties
}

// NewModel returns a model with the given data. The conformation must contain one position
// per atom in the hierarchy. A nil coarse hierarchy is replaced by an empty one.
func NewModel(entry string, modelNum int, source SourceData, atomic *AtomicHierarchy, conf *Conformation, coarse *CoarseHierarchy) (*Model, error) {
	if atomic == nil {
		return nil, NewError("no atomic hierarchy given", "NewModel")
	}
	if conf == nil {
		return nil, NewError("no conformation given", "NewModel")
	}
	if conf.Len() != atomic.AtomCount() {
		return nil, NewError(fmt.Sprintf("conformation has %d positions for %d atoms", conf.Len(), atomic.AtomCount()), "NewModel")
	}
	if coarse == nil {
		coarse = &CoarseHierarchy{}
	}
	return &Model{
		ID:           uuid.New(),
		Entry:        entry,
		ModelNum:     modelNum,
		Source:       source,
		Atomic:       atomic,
		Conformation: conf,
		Coarse:       coarse,
	}, nil
}

// MustModel is like NewModel but panics on error.
func MustModel(entry string, modelNum int, source SourceData, atomic *AtomicHierarchy, conf *Conformation, coarse *CoarseHierarchy) *Model {
	m, err := NewModel(entry, modelNum, source, atomic, conf, coarse)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// ElementCount returns the number of elements of the given kind in the model.
func (M *Model) ElementCount(kind UnitKind) int {
	if kind == Atomic {
		return M.Atomic.AtomCount()
	}
	return M.Coarse.Elements(kind).Count()
}

func (M *Model) String() string {
	return fmt.Sprintf("%s model %d (%d atoms)", M.Entry, M.ModelNum, M.Atomic.AtomCount())
}
