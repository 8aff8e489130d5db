/*
 * main.go, part of biostruct.
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

// structinfo reads an mmCIF file (optionally gzip or zstd compressed) and prints
// the units of each model, the bonds between them, the cross-link restraints and
// the symmetry groups.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/chemgraph"
	"github.com/rmera/biostruct/chemjson"
	"github.com/rmera/biostruct/chemplot"
	"github.com/rmera/biostruct/cif"
	"github.com/rmera/biostruct/histo"
	"github.com/rmera/biostruct/structure"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type options struct {
	bonds   string //yaml file with bonding parameters
	plot    string
	json    bool
	bins    int
	verbose bool
	input   string
}

func main() {
	var o options
	flag.StringVar(&o.bonds, "bonds", "", "YAML file with the bonding parameters")
	flag.StringVar(&o.plot, "plot", "", "Save a histogram of the cross-link distances to this PNG file")
	flag.BoolVar(&o.json, "json", false, "Print one JSON report per model instead of text")
	flag.IntVar(&o.bins, "hist", 0, "Bin the cross-link distances in this many bins")
	flag.BoolVar(&o.verbose, "v", false, "Verbose (development) logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.cif[.gz|.zst]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(ExitFailure)
	}
	o.input = flag.Arg(0)

	logger, err := newLogger(o.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	defer logger.Sync()
	chem.SetLogger(logger)

	if err := run(o, os.Stdout); err != nil {
		logger.Error("structinfo failed", zap.String("file", o.input), zap.Error(err))
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(o options, out io.Writer) error {
	params := structure.DefaultBondingParams()
	if o.bonds != "" {
		var err error
		if params, err = structure.LoadBondingParamsFile(o.bonds); err != nil {
			return err
		}
	}
	f, err := cif.ReadFile(o.input)
	if err != nil {
		return err
	}
	var allPairs []structure.Pair
	for _, block := range f.Blocks {
		models, err := chem.ModelsFromCIF(block)
		if err != nil {
			return err
		}
		for _, m := range models {
			s := structure.OfModel(m)
			bonds := structure.ComputeInterUnitBonds(s, params)
			if o.json {
				R, jerr := chemjson.NewReport(m, s, bonds, o.bins)
				if jerr != nil {
					return jerr
				}
				R.ConnectedUnits = chemgraph.ConnectedUnitsWith(s, bonds)
				if jerr := R.Send(out); jerr != nil {
					return jerr
				}
			} else if err := report(out, m, s, bonds, o.bins); err != nil {
				return err
			}
			allPairs = append(allPairs, s.CrossLinkRestraints().Pairs()...)
		}
	}
	if o.plot != "" && len(allPairs) > 0 {
		if err := chemplot.CrossLinkHistogram(allPairs, 0, "Cross-link distances", o.plot); err != nil {
			return err
		}
	}
	return nil
}

// report prints the properties of the structure.
func report(out io.Writer, m *chem.Model, s *structure.Structure, bonds *structure.InterUnitBonds, bins int) error {
	fmt.Fprintf(out, "%s: %d units, %d elements, hash %d\n", m, len(s.Units()), s.ElementCount(), s.HashCode())
	for _, u := range s.Units() {
		fmt.Fprintf(out, "  %s\n", u)
	}
	fmt.Fprintf(out, "  inter-unit bonds: %d in %d unit pairs\n", bonds.EdgeCount(), len(bonds.Edges()))
	for _, e := range bonds.Edges() {
		for _, b := range e.Bonds {
			fmt.Fprintf(out, "    %d:%d - %d:%d %s order %d %.2f A\n", e.UnitA, b.IndexA, e.UnitB, b.IndexB, b.Flags, b.Order, b.Distance)
		}
	}
	fmt.Fprintf(out, "  connected unit sets: %v\n", chemgraph.ConnectedUnitsWith(s, bonds))
	fmt.Fprintf(out, "  symmetry groups: %d\n", len(s.SymmetryGroups()))
	pairs := s.CrossLinkRestraints().Pairs()
	if len(pairs) > 0 {
		sum := structure.Summarize(pairs)
		fmt.Fprintf(out, "  cross-links: %d restraints, mean %.2f A, sd %.2f A, %.0f%% satisfied\n", sum.Restraints, sum.Mean, sum.StdDev, 100*sum.Satisfied)
		if bins > 0 {
			h, err := histo.NewData(histo.EvenDividers(0, 1+floats.Max(sum.Distances), bins), sum.Distances)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n", h)
		}
	}
	return nil
}
