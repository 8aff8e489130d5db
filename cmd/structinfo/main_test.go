/*
 * main_test.go, part of biostruct.
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

package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/biostruct/chemjson"
)

func TestRun(Te *testing.T) {
	var out bytes.Buffer
	require.NoError(Te, run(options{input: "../../testdata/small.cif"}, &out))
	s := out.String()
	assert.Contains(Te, s, "SMALL model 1 (14 atoms): 3 units, 14 elements")
	assert.Contains(Te, s, "inter-unit bonds: 3 in 2 unit pairs")
	assert.Contains(Te, s, "covalent|sulfide order 1 2.03 A")
	assert.Contains(Te, s, "connected unit sets: [[0 1 2]]")
	assert.Contains(Te, s, "cross-links: 2 restraints")
}

func TestRunOptions(Te *testing.T) {
	dir := Te.TempDir()
	params := filepath.Join(dir, "bonds.yaml")
	require.NoError(Te, os.WriteFile(params, []byte("max_radius: 0.7\n"), 0o644))
	plot := filepath.Join(dir, "xl.png")
	var out bytes.Buffer
	require.NoError(Te, run(options{input: "../../testdata/coarse.cif", bonds: params, plot: plot}, &out))
	assert.Contains(Te, out.String(), "inter-unit bonds: 0 in 0 unit pairs")
	_, err := os.Stat(plot)
	assert.NoError(Te, err)

	require.NoError(Te, os.WriteFile(params, []byte("max_radius: -1\n"), 0o644))
	assert.Error(Te, run(options{input: "../../testdata/coarse.cif", bonds: params}, &out))
	assert.Error(Te, run(options{input: "nonexistent.cif"}, &out))
}

func TestRunJSON(Te *testing.T) {
	var out bytes.Buffer
	require.NoError(Te, run(options{input: "../../testdata/small.cif", json: true, bins: 3}, &out))
	R, jerr := chemjson.DecodeReport(bufio.NewReader(&out))
	require.Nil(Te, jerr)
	assert.Equal(Te, "SMALL", R.Entry)
	assert.Len(Te, R.Bonds, 3)
	assert.Equal(Te, [][]int{{0, 1, 2}}, R.ConnectedUnits)
	require.NotNil(Te, R.CrossLinks)
	assert.Equal(Te, 2, R.CrossLinks.Histogram.Total())

	out.Reset()
	require.NoError(Te, run(options{input: "../../testdata/small.cif", bins: 3}, &out))
	assert.Contains(Te, out.String(), " 0.00- 2.01")
}
