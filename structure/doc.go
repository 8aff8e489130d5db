/*
 * doc.go, part of biostruct.
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

/*
Package structure assembles models into structures.

A Structure is an immutable, id-ordered set of units. Each unit takes a strictly
increasing subset of the atoms, spheres or gaussians of one model, and places
them in space with a symmetry operator. Many units (and structures) can share
a model, which is never copied.

The derived properties of a structure (spatial lookup, bonds between units,
cross-link restraint pairs, symmetry groups and hash) are computed on first
use and kept. Concurrent first calls compute the property once.

	models, err := chem.ModelsFromCIF(block)
	s := structure.OfModel(models[0])
	for _, e := range s.InterUnitBonds().Edges() {
		fmt.Println(e.UnitA, e.UnitB, len(e.Bonds))
	}
*/
package structure
