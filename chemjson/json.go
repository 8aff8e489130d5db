/*
 * json.go, part of biostruct.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"strings"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/histo"
	"github.com/rmera/biostruct/structure"
)

// An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and the stage and function where it happened, and
// returns a JSON-marshalable error.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error()}
	if where == "postprocess" {
		jerr.InPostProcess = true
	} else {
		jerr.InProcess = true
	}
	jerr.Decorate(function)
	return jerr
}

// Unit is a ready-to-serialize summary of a unit
type Unit struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Operator string `json:"operator"`
	Elements int    `json:"elements"`
	First    int    `json:"first"`
	Last     int    `json:"last"`
}

// Bond is a ready-to-serialize bond between elements of two units.
type Bond struct {
	UnitA    int      `json:"unit_a"`
	IndexA   int      `json:"index_a"`
	UnitB    int      `json:"unit_b"`
	IndexB   int      `json:"index_b"`
	Order    int      `json:"order"`
	Flags    []string `json:"flags"`
	Distance float64  `json:"distance"`
}

// CrossLinks summarizes the cross-link restraints of a structure.
type CrossLinks struct {
	Restraints int         `json:"restraints"`
	Mean       float64     `json:"mean"`
	StdDev     float64     `json:"std_dev"`
	Satisfied  float64     `json:"satisfied"`
	Histogram  *histo.Data `json:"histogram,omitempty"`
}

// Report is the information about a structure passed to other programs.
type Report struct {
	Entry          string      `json:"entry"`
	Model          int         `json:"model"`
	Hash           int32       `json:"hash"`
	Elements       int         `json:"elements"`
	Units          []Unit      `json:"units"`
	Bonds          []Bond      `json:"bonds"`
	ConnectedUnits [][]int     `json:"connected_units,omitempty"`
	SymmetryGroups int         `json:"symmetry_groups"`
	CrossLinks     *CrossLinks `json:"cross_links,omitempty"`
}

func flagNames(f chem.LinkFlag) []string {
	if f == chem.LinkNone {
		return []string{}
	}
	return strings.Split(f.String(), "|")
}

// NewReport collects the information of the structure s, built from the model m,
// with the inter-unit bonds given. Cross-link distances are binned in bins bins, if
// bins is larger than 0.
func NewReport(m *chem.Model, s *structure.Structure, bonds *structure.InterUnitBonds, bins int) (*Report, *Error) {
	R := &Report{
		Entry:          m.Entry,
		Model:          m.ModelNum,
		Hash:           s.HashCode(),
		Elements:       s.ElementCount(),
		Units:          make([]Unit, 0, len(s.Units())),
		Bonds:          make([]Bond, 0, bonds.EdgeCount()),
		SymmetryGroups: len(s.SymmetryGroups()),
	}
	for _, u := range s.Units() {
		ju := Unit{ID: u.ID(), Kind: u.Kind().String(), Operator: u.Operator().Name, Elements: u.Len(), First: -1, Last: -1}
		if el := u.Elements(); len(el) > 0 {
			ju.First, ju.Last = el[0], el[len(el)-1]
		}
		R.Units = append(R.Units, ju)
	}
	for _, e := range bonds.Edges() {
		for _, b := range e.Bonds {
			R.Bonds = append(R.Bonds, Bond{UnitA: e.UnitA, IndexA: b.IndexA, UnitB: e.UnitB, IndexB: b.IndexB,
				Order: b.Order, Flags: flagNames(b.Flags), Distance: b.Distance})
		}
	}
	pairs := s.CrossLinkRestraints().Pairs()
	if len(pairs) == 0 {
		return R, nil
	}
	sum := structure.Summarize(pairs)
	R.CrossLinks = &CrossLinks{Restraints: sum.Restraints, Mean: sum.Mean, StdDev: sum.StdDev, Satisfied: sum.Satisfied}
	if bins > 0 {
		max := 0.0
		for _, d := range sum.Distances {
			max = math.Max(max, d)
		}
		//the last divider is excluded, so it goes a bit over the largest distance.
		h, err := histo.NewData(histo.EvenDividers(0, math.Nextafter(max, math.Inf(1)), bins), sum.Distances)
		if err != nil {
			return nil, NewError("process", "NewReport", err)
		}
		R.CrossLinks.Histogram = h
	}
	return R, nil
}

// Send marshals the report and writes it to out as one line, returns an error or nil
func (R *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("postprocess", "Report.Send", err)
	}
	return nil
}

// DecodeReport reads one report, in one line, from stream.
func DecodeReport(stream *bufio.Reader) (*Report, *Error) {
	line, err := stream.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("process", "DecodeReport", err)
	}
	R := new(Report)
	if err := json.Unmarshal(line, R); err != nil {
		return nil, NewError("process", "DecodeReport", err)
	}
	return R, nil
}
