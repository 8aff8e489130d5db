/*
 * linktype.go, part of biostruct.
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

import "strings"

// LinkFlag is a bitset describing the nature of a bond.
type LinkFlag uint16

const (
	LinkNone                 LinkFlag = 0
	LinkCovalent             LinkFlag = 0x1
	LinkMetallicCoordination LinkFlag = 0x2
	LinkHydrogen             LinkFlag = 0x4
	LinkIon                  LinkFlag = 0x8
	LinkSulfide              LinkFlag = 0x10
	LinkAromatic             LinkFlag = 0x20
	LinkComputed             LinkFlag = 0x40 //assigned by a geometric criterion
)

var linkNames = []struct {
	f    LinkFlag
	name string
}{
	{LinkCovalent, "covalent"},
	{LinkMetallicCoordination, "metallic"},
	{LinkHydrogen, "hydrogen"},
	{LinkIon, "ion"},
	{LinkSulfide, "sulfide"},
	{LinkAromatic, "aromatic"},
	{LinkComputed, "computed"},
}

// Has returns true if all the flags in o are set in f.
func (f LinkFlag) Has(o LinkFlag) bool {
	return f&o == o
}

func (f LinkFlag) String() string {
	if f == LinkNone {
		return "none"
	}
	ret := make([]string, 0, 2)
	for _, v := range linkNames {
		if f&v.f != 0 {
			ret = append(ret, v.name)
		}
	}
	return strings.Join(ret, "|")
}

// structConnFlags maps a struct_conn conn_type_id to its flags.
func structConnFlags(connType string) LinkFlag {
	switch strings.ToLower(connType) {
	case "covale", "covale_base", "covale_phosphate", "covale_sugar", "modres":
		return LinkCovalent
	case "disulf":
		return LinkCovalent | LinkSulfide
	case "hydrog":
		return LinkHydrogen
	case "metalc":
		return LinkMetallicCoordination
	case "saltbr":
		return LinkIon
	}
	return LinkNone
}
