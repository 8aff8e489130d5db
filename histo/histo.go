/*
 * histo.go, part of biostruct.
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

// Package histo contains binned distributions of values, such as
// cross-link distances.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i contains the values v with dividers[i] <= v < dividers[i+1].
// Values outside the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// EvenDividers returns n+1 dividers for n bins of the same width between min and max.
func EvenDividers(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	return floats.Span(make([]float64, n+1), min, max)
}

// NewData returns a histogram with the given dividers (copied), containing rawdata,
// which can be nil. There must be at least 2 dividers, in increasing order.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo.NewData: need at least 2 dividers, got %d", len(dividers))
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo.NewData: dividers must be sorted")
	}
	d := &Data{dividers: append([]float64(nil), dividers...)}
	d.histo = make([]float64, len(dividers)-1)
	if len(rawdata) > 0 {
		d.rehisto(rawdata)
	}
	return d, nil
}

// rehisto replaces the contents of the histogram with the values in rawdata,
// which is not modified.
func (D *Data) rehisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics with values off limits, so those are removed first.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

// AddData adds the given values to the histogram
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider larger than v, minus one.
		j := sort.Search(last+1, func(i int) bool { return D.dividers[i] > v }) - 1
		D.histo[j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Total returns the number of values counted.
func (D *Data) Total() int { return D.total }

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool { return D.normalized }

// Normalize divides each bin by the number of values counted.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize reverts Normalize
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// View returns the bins. The slice must not be modified.
func (D *Data) View() []float64 { return D.histo }

// Dividers returns a copy of the dividers
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// String prints the histogram in two lines: the ranges and the bin values.
func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%5.2f-%5.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%11.3f", v))
	}
	return strings.Join(d, " ") + "\n" + strings.Join(h, " ")
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{Normalized: D.normalized, Total: D.total, Dividers: D.dividers, Histo: D.histo})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
