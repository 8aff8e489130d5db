/*
 * histogram.go, part of biostruct.
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

// Package chemplot plots properties of structures with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	chem "github.com/rmera/biostruct"
	"github.com/rmera/biostruct/structure"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// CrossLinkHistogram plots the histogram of the distances of the restraints in pairs,
// with the given number of bins, and a vertical line at the largest distance threshold.
// Each restraint is counted once. The plot is saved as plotname.png
func CrossLinkHistogram(pairs []structure.Pair, bins int, title, plotname string) error {
	sum := structure.Summarize(pairs)
	if sum.Restraints == 0 {
		return chem.NewError("no restraints to plot", "chemplot.CrossLinkHistogram")
	}
	if bins <= 0 {
		bins = 1 + int(math.Ceil(math.Log2(float64(sum.Restraints)))) //Sturges
	}
	p := basicPlot(title, "Distance (A)", "Restraints")
	h, err := plotter.NewHist(plotter.Values(sum.Distances), bins)
	if err != nil {
		return decorate(err, "CrossLinkHistogram")
	}
	h.FillColor = color.RGBA{R: 70, G: 110, B: 180, A: 255}
	p.Add(h)
	threshold := 0.0
	for _, v := range pairs {
		threshold = math.Max(threshold, v.DistanceThreshold)
	}
	if threshold > 0 {
		top := 0.0
		for _, b := range h.Bins {
			top = math.Max(top, b.Weight)
		}
		l, err := plotter.NewLine(plotter.XYs{{X: threshold, Y: 0}, {X: threshold, Y: top}})
		if err != nil {
			return decorate(err, "CrossLinkHistogram")
		}
		l.LineStyle.Color = color.RGBA{R: 200, A: 255}
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("threshold, %.0f%% satisfied", 100*sum.Satisfied), l)
	}
	filename := plotname
	if !strings.HasSuffix(filename, ".png") {
		filename = fmt.Sprintf("%s.png", plotname)
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return decorate(err, "CrossLinkHistogram")
	}
	return nil
}

func decorate(err error, caller string) error {
	return fmt.Errorf("chemplot.%s: %w", caller, err)
}
