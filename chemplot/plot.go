/*
 * plot.go, part of gocharges.
 *
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
 *
 * goCharges is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

// Package chemplot produces simple plots of per-atom properties using
// gonum.org/v1/plot.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicChargePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Atom index"
	p.Y.Label.Text = "Partial charge / e"
	p.Add(plotter.NewGrid())
	return p
}

// ChargePlot writes a scatter plot of charges against atom index to
// plotname.png. Atoms whose charge is NaN (i.e. not assigned) are
// skipped. If symbols is non-nil it must have one element per charge,
// and hydrogens are drawn in a lighter color than heavy atoms.
func ChargePlot(charges []float64, symbols []string, title, plotname string) error {
	if charges == nil {
		panic("Given nil charges")
	}
	if symbols != nil && len(symbols) != len(charges) {
		return fmt.Errorf("ChargePlot: got %d symbols for %d charges", len(symbols), len(charges))
	}
	p := basicChargePlot(title)
	heavy := make(plotter.XYs, 0, len(charges))
	hydro := make(plotter.XYs, 0, len(charges))
	for i, q := range charges {
		if math.IsNaN(q) {
			continue
		}
		point := plotter.XY{X: float64(i), Y: q}
		if symbols != nil && symbols[i] == "H" {
			hydro = append(hydro, point)
		} else {
			heavy = append(heavy, point)
		}
	}
	sets := []struct {
		pts plotter.XYs
		col color.RGBA
	}{
		{heavy, color.RGBA{R: 180, A: 255}},
		{hydro, color.RGBA{R: 130, G: 130, B: 130, A: 255}},
	}
	for _, set := range sets {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = set.col
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}
