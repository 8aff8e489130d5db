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
Package chem is the main package of the biostruct library. It provides the model of a
biomolecular structure: the atomic hierarchy (chains, residues, atoms), the
conformation (coordinates), the optional coarse-grained hierarchy (spheres and gaussians)
and the tables of the source file that the bond inference needs.

	**Capabilities**

	Builds models from mmCIF data blocks (see the cif subpackage), one model per
	pdbx_PDB_model_num, or from atom records for any other source.

	Infers explicit connectivity (struct_conn) resolved to atom indexes, with lookups by
	residue pair and by atom.

	Builds the per-component template bond tables (chem_comp_bond).

	Maps integrative-modeling cross-link restraints (ihm_cross_link_restraint) onto
	atomic and coarse elements.

Every derived property is computed at most once per model and cached in a typed slot.
A property that has nothing to be derived from (a source that is not mmCIF, or an empty
table) is nil, which is not an error.

The structure subpackage builds on top of this one: units, symmetry operators and
symmetry groups, spatial lookups, inter-unit bonds and cross-link pairs.
*/
package chem
