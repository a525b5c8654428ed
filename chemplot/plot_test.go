/*
 * plot_test.go, part of gocharges.
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

package chemplot

import (
	"math"
	"os"
	"testing"
)

func TestChargePlot(Te *testing.T) {
	charges := []float64{0.0792, -0.2526, 0.0578, 0.0578, 0.0578, math.NaN()}
	symbols := []string{"C", "F", "H", "H", "H", "Si"}
	err := ChargePlot(charges, symbols, "fluoromethane", "../test/charges")
	if err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat("../test/charges.png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("An empty plot file was written")
	}
	err = ChargePlot(charges, []string{"C"}, "bad", "../test/bad")
	if err == nil {
		Te.Error("Expected an error for mismatched symbols and charges")
	}
}
