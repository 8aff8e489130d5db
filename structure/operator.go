/*
 * operator.go, part of biostruct.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	chem "github.com/rmera/biostruct"
)

// AssemblyInfo identifies the biological assembly an operator was generated for.
type AssemblyInfo struct {
	AssemblyID string
	OperatorID string
	OperList   []string
}

// SymmetryOperator is a rigid transform, as a 4x4 matrix acting on column vectors
// (rotation in the upper-left 3x3 block, translation in the last column),
// plus its crystallographic metadata.
type SymmetryOperator struct {
	Name       string
	Assembly   *AssemblyInfo
	SpgrOp     int //index of the spacegroup operation, -1 if none.
	HKL        [3]int
	IsIdentity bool
	matrix     *mat.Dense
}

const identityTol = 1e-9

// DefaultOperator returns the identity operator, named 1_555
func DefaultOperator() *SymmetryOperator {
	return &SymmetryOperator{Name: chem.IdentitySymmetry, SpgrOp: -1, IsIdentity: true, matrix: identity4()}
}

func identity4() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// NewOperator returns an operator with the given 4x4 matrix (copied). The last row of the
// matrix must be (0, 0, 0, 1).
func NewOperator(name string, m mat.Matrix, assembly *AssemblyInfo, spgrOp int, hkl [3]int) (*SymmetryOperator, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return nil, chem.NewError(fmt.Sprintf("operator matrix must be 4x4, not %dx%d", r, c), "structure.NewOperator")
	}
	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 || m.At(3, 3) != 1 {
		return nil, chem.NewError("last row of an operator matrix must be 0 0 0 1", "structure.NewOperator")
	}
	d := mat.DenseCopyOf(m)
	return &SymmetryOperator{
		Name:       name,
		Assembly:   assembly,
		SpgrOp:     spgrOp,
		HKL:        hkl,
		IsIdentity: mat.EqualApprox(d, identity4(), identityTol),
		matrix:     d,
	}, nil
}

// RotTransOperator returns an operator from a 3x3 rotation matrix and a translation.
func RotTransOperator(name string, rot mat.Matrix, trans r3.Vec) (*SymmetryOperator, error) {
	r, c := rot.Dims()
	if r != 3 || c != 3 {
		return nil, chem.NewError(fmt.Sprintf("rotation matrix must be 3x3, not %dx%d", r, c), "structure.RotTransOperator")
	}
	m := identity4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, rot.At(i, j))
		}
	}
	m.Set(0, 3, trans.X)
	m.Set(1, 3, trans.Y)
	m.Set(2, 3, trans.Z)
	return NewOperator(name, m, nil, -1, [3]int{})
}

// TranslationOperator returns an operator that only translates.
func TranslationOperator(name string, trans r3.Vec) *SymmetryOperator {
	op, _ := RotTransOperator(name, identity3(), trans)
	return op
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// Compose returns the operator that applies first and then then. The result takes the
// name and metadata of then.
func Compose(first, then *SymmetryOperator) *SymmetryOperator {
	m := mat.NewDense(4, 4, nil)
	m.Mul(then.matrix, first.matrix)
	return &SymmetryOperator{
		Name:       then.Name,
		Assembly:   then.Assembly,
		SpgrOp:     then.SpgrOp,
		HKL:        then.HKL,
		IsIdentity: mat.EqualApprox(m, identity4(), identityTol),
		matrix:     m,
	}
}

// Apply returns the transformed v.
func (O *SymmetryOperator) Apply(v r3.Vec) r3.Vec {
	if O.IsIdentity {
		return v
	}
	m := O.matrix.RawMatrix().Data
	return r3.Vec{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// Matrix returns a copy of the 4x4 transformation matrix.
func (O *SymmetryOperator) Matrix() *mat.Dense {
	return mat.DenseCopyOf(O.matrix)
}

func (O *SymmetryOperator) String() string {
	return O.Name
}
