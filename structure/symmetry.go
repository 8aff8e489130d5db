/*
 * symmetry.go, part of biostruct.
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
	"slices"

	"gonum.org/v1/gonum/mat"

	chem "github.com/rmera/biostruct"
)

// SymmetryGroup is a set of units with the same model, kind and elements, which
// differ only in their operators.
type SymmetryGroup struct {
	Elements []int
	Units    []*Unit
	Hash     int32
}

// Transforms returns the operator matrices of the units in the group, in unit order.
func (G *SymmetryGroup) Transforms() []*mat.Dense {
	ret := make([]*mat.Dense, len(G.Units))
	for i, u := range G.Units {
		ret[i] = u.op.Matrix()
	}
	return ret
}

type groupKey struct {
	model *chem.Model
	kind  Kind
	hash  int32
}

// groupUnits groups the units, in order of first appearance of each group.
func groupUnits(units []*Unit) []*SymmetryGroup {
	var groups []*SymmetryGroup
	//several groups can share a key if their elements collide on the hash.
	byKey := make(map[groupKey][]*SymmetryGroup)
	for _, u := range units {
		key := groupKey{model: u.model, kind: u.kind, hash: elementsHash(u.elements)}
		var g *SymmetryGroup
		for _, c := range byKey[key] {
			if slices.Equal(c.Elements, u.elements) {
				g = c
				break
			}
		}
		if g == nil {
			g = &SymmetryGroup{Elements: u.elements, Hash: key.hash}
			byKey[key] = append(byKey[key], g)
			groups = append(groups, g)
		}
		g.Units = append(g.Units, u)
	}
	return groups
}
