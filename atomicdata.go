/*
 * atomicdata.go, part of biostruct.
 *
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
 *
 */

package chem

import "strings"

// Covalent radii, from Cordero et al., 2008 (DOI:10.1039/B801115J).
// Only common bio-elements and metals are present.
var symbolCovrad = map[string]float64{
	"H":  0.4, // longer than the real 0.31. H has only one bond, extra ones get removed by the valence check.
	"C":  0.76,
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  //hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

// Maximum number of bonds. Missing elements are not checked.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// NormalizeSymbol returns the element symbol with the first letter in upper case and
// the rest in lower case, so "FE", "fe" and "Fe" all give "Fe".
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// CovalentRadius returns the covalent radius, in A, of the
// element, and false if the element is not known.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[NormalizeSymbol(symbol)]
	return r, ok
}

// MaxBonds returns the maximum number of bonds for the element, or 0
// if the number is not checked.
func MaxBonds(symbol string) int {
	return symbolMaxBonds[NormalizeSymbol(symbol)]
}
