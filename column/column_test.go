/*
 * column_test.go, part of biostruct.
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

package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenColumns(Te *testing.T) {
	s := Str([]string{"A", ".", "?", "B"})
	assert.Equal(Te, 4, s.RowCount())
	assert.Equal(Te, Present, s.ValueKind(0))
	assert.Equal(Te, NotPresent, s.ValueKind(1))
	assert.Equal(Te, Unknown, s.ValueKind(2))
	assert.Equal(Te, "", s.Value(1))
	assert.Equal(Te, "B", s.Value(3))

	i := Int([]string{"12", ".", "x", "+3"})
	assert.Equal(Te, 12, i.Value(0))
	assert.Equal(Te, NotPresent, i.ValueKind(1))
	assert.Equal(Te, Unknown, i.ValueKind(2))
	assert.Equal(Te, 0, i.Value(2))
	assert.Equal(Te, 3, i.Value(3))

	f := Float([]string{"1.25", "?", "2.1(3)"})
	assert.InDelta(Te, 1.25, f.Value(0), 1e-12)
	assert.Equal(Te, Unknown, f.ValueKind(1))
	assert.Equal(Te, Unknown, f.ValueKind(2))
}

func TestSliceColumns(Te *testing.T) {
	c := Of([]string{"a", "b"})
	assert.True(Te, IsPresent(c, 1))
	k := OfKinds([]int{1, 0}, []ValueKind{Present, NotPresent})
	assert.False(Te, IsPresent(k, 1))
	assert.Panics(Te, func() { OfKinds([]int{1}, nil) })

	u := Undefined[float64](3)
	assert.Equal(Te, 3, u.RowCount())
	assert.Equal(Te, NotPresent, u.ValueKind(2))
	assert.Equal(Te, 0.0, u.Value(0))
}
