/*
 * cif.go, part of biostruct.
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

// Package cif reads mmCIF files into categories of raw tokens and
// exposes every field as a column.Column. It does not know anything
// about the meaning of the data.
package cif

import (
	"fmt"
	"strings"

	"github.com/rmera/biostruct/column"
)

// File is a parsed CIF file
type File struct {
	Blocks []*Block
}

// Block is a data_ block.
type Block struct {
	Header     string
	categories map[string]*Category
	order      []string
}

func newBlock(header string) *Block {
	return &Block{Header: header, categories: make(map[string]*Category)}
}

// Category returns the category with the given name (without the leading
// underscore, case-insensitive). A missing category is returned as an
// empty one, with zero rows, never nil.
func (B *Block) Category(name string) *Category {
	name = strings.ToLower(strings.TrimPrefix(name, "_"))
	if c, ok := B.categories[name]; ok {
		return c
	}
	return &Category{Name: name, fields: map[string][]string{}}
}

// HasCategory returns true if the block contains the category name.
func (B *Block) HasCategory(name string) bool {
	_, ok := B.categories[strings.ToLower(strings.TrimPrefix(name, "_"))]
	return ok
}

// CategoryNames returns the category names in the order they first appear.
func (B *Block) CategoryNames() []string {
	ret := make([]string, len(B.order))
	copy(ret, B.order)
	return ret
}

func (B *Block) category(name string) *Category {
	if c, ok := B.categories[name]; ok {
		return c
	}
	c := &Category{Name: name, fields: map[string][]string{}}
	B.categories[name] = c
	B.order = append(B.order, name)
	return c
}

// Category is a table of fields, all with the same number of rows.
type Category struct {
	Name   string
	fields map[string][]string
	order  []string
	rows   int
}

// RowCount returns the number of rows in the category
func (C *Category) RowCount() int {
	return C.rows
}

// Has returns true if the category contains the field.
func (C *Category) Has(field string) bool {
	_, ok := C.fields[strings.ToLower(field)]
	return ok
}

// FieldNames returns the lowercased field names in file order.
func (C *Category) FieldNames() []string {
	ret := make([]string, len(C.order))
	copy(ret, C.order)
	return ret
}

func (C *Category) tokens(field string) ([]string, bool) {
	t, ok := C.fields[strings.ToLower(field)]
	return t, ok
}

// Str returns the field as a string column. Missing fields give a column
// where no row is present.
func (C *Category) Str(field string) column.Column[string] {
	t, ok := C.tokens(field)
	if !ok {
		return column.Undefined[string](C.rows)
	}
	return column.Str(t)
}

// Int returns the field as an integer column.
func (C *Category) Int(field string) column.Column[int] {
	t, ok := C.tokens(field)
	if !ok {
		return column.Undefined[int](C.rows)
	}
	return column.Int(t)
}

// Float returns the field as a float64 column.
func (C *Category) Float(field string) column.Column[float64] {
	t, ok := C.tokens(field)
	if !ok {
		return column.Undefined[float64](C.rows)
	}
	return column.Float(t)
}

// appends a set of columns (a loop, or a single key-value pair) to the
// category. All the columns must have the same length.
func (C *Category) add(names []string, cols [][]string) error {
	if len(cols) == 0 {
		return nil
	}
	n := len(cols[0])
	if C.rows != 0 && len(C.order) > 0 {
		//a category given again as single values after a loop, or
		//values split in several single entries.
		if n == 1 && C.rows == 1 {
			for i, v := range names {
				if _, ok := C.fields[v]; ok {
					return fmt.Errorf("field %s.%s given twice", C.Name, v)
				}
				C.fields[v] = cols[i]
				C.order = append(C.order, v)
			}
			return nil
		}
		return fmt.Errorf("category %s given twice", C.Name)
	}
	for i, v := range names {
		C.fields[v] = cols[i]
		C.order = append(C.order, v)
	}
	C.rows = n
	return nil
}

// splits "_atom_site.Cartn_x" into "atom_site" and "cartn_x"
func splitName(s string) (string, string, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "_"))
	i := strings.IndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("malformed data name: _%s", s)
	}
	return s[:i], s[i+1:], nil
}

// Error is the error returned by the cif reader.
type Error struct {
	message  string
	filename string
	line     int
	deco     []string
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s (line %d in %s)", err.message, err.line, err.filename)
	}
	return fmt.Sprintf("%s (%s)", err.message, err.filename)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// FileName returns the name of the file that caused the error, if any
func (err *Error) FileName() string { return err.filename }

// Critical returns true. A CIF that can't be parsed can't be used.
func (err *Error) Critical() bool { return true }
