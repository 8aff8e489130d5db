/*
 * column.go, part of biostruct.
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

// Package column provides row-indexed, typed access to already-parsed
// tabular data. Every row carries a ValueKind telling whether the value
// was actually given in the source.
package column

import (
	"strconv"
	"strings"
)

// ValueKind tells whether the value of a row was given.
type ValueKind int

const (
	Present ValueKind = iota
	NotPresent
	Unknown
)

func (k ValueKind) String() string {
	switch k {
	case Present:
		return "present"
	case NotPresent:
		return "not-present"
	default:
		return "unknown"
	}
}

// Column is the accessor over one field of a table.
type Column[T any] interface {
	//Value returns the value at row. For rows without a present value
	//it returns the zero value of T.
	Value(row int) T
	ValueKind(row int) ValueKind
	RowCount() int
}

type sliceColumn[T any] struct {
	values []T
	kinds  []ValueKind //nil means all present
}

func (c *sliceColumn[T]) Value(row int) T {
	return c.values[row]
}

func (c *sliceColumn[T]) ValueKind(row int) ValueKind {
	if c.kinds == nil {
		return Present
	}
	return c.kinds[row]
}

func (c *sliceColumn[T]) RowCount() int {
	return len(c.values)
}

// Of returns a column where every row is present.
func Of[T any](values []T) Column[T] {
	return &sliceColumn[T]{values: values}
}

// OfKinds returns a column with explicit value kinds. It panics if
// the slices differ in length.
func OfKinds[T any](values []T, kinds []ValueKind) Column[T] {
	if len(values) != len(kinds) {
		panic("column.OfKinds: values and kinds differ in length")
	}
	return &sliceColumn[T]{values: values, kinds: kinds}
}

type undefined[T any] struct {
	rows int
}

func (u undefined[T]) Value(row int) T {
	var zero T
	return zero
}

func (u undefined[T]) ValueKind(row int) ValueKind { return NotPresent }

func (u undefined[T]) RowCount() int { return u.rows }

// Undefined returns a column of rows rows, none of them present.
// It stands for fields missing from a table.
func Undefined[T any](rows int) Column[T] {
	return undefined[T]{rows: rows}
}

// tokenKind applies the mmCIF convention: "." is not present, "?" is unknown.
func tokenKind(t string) ValueKind {
	switch t {
	case ".":
		return NotPresent
	case "?":
		return Unknown
	}
	return Present
}

type strColumn struct {
	tokens []string
}

func (c strColumn) Value(row int) string {
	t := c.tokens[row]
	if tokenKind(t) != Present {
		return ""
	}
	return t
}
func (c strColumn) ValueKind(row int) ValueKind { return tokenKind(c.tokens[row]) }
func (c strColumn) RowCount() int               { return len(c.tokens) }

// Str returns a string column over raw tokens.
func Str(tokens []string) Column[string] {
	return strColumn{tokens}
}

type parsedColumn[T any] struct {
	values []T
	kinds  []ValueKind
}

func (c *parsedColumn[T]) Value(row int) T             { return c.values[row] }
func (c *parsedColumn[T]) ValueKind(row int) ValueKind { return c.kinds[row] }
func (c *parsedColumn[T]) RowCount() int               { return len(c.values) }

func parse[T any](tokens []string, f func(string) (T, error)) Column[T] {
	ret := &parsedColumn[T]{values: make([]T, len(tokens)), kinds: make([]ValueKind, len(tokens))}
	for i, t := range tokens {
		k := tokenKind(t)
		ret.kinds[i] = k
		if k != Present {
			continue
		}
		v, err := f(t)
		if err != nil {
			//we keep the zero value, but the value can't be trusted.
			ret.kinds[i] = Unknown
			continue
		}
		ret.values[i] = v
	}
	return ret
}

// Int returns an integer column over raw tokens. Tokens that fail
// to parse are reported as Unknown.
func Int(tokens []string) Column[int] {
	return parse(tokens, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimPrefix(s, "+"))
	})
}

// Float returns a float64 column over raw tokens. Tokens that fail
// to parse, like "1.5(3)", are reported as Unknown.
func Float(tokens []string) Column[float64] {
	return parse(tokens, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// IsPresent is a shorthand for c.ValueKind(row) == Present.
func IsPresent[T any](c Column[T], row int) bool {
	return c.ValueKind(row) == Present
}
