/*
 * ctf_test.go, part of gocharges.
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

package ctf

import (
	"io"
	"math"
	"testing"
)

//Writes two charge tables to each supported compression format and reads
//them back.
func TestCTFRoundTrip(Te *testing.T) {
	symbols := []string{"C", "F", "H", "H", "H"}
	tables := [][]float64{
		{0.1147, -0.1754, 0.0202, 0.0202, 0.0202},
		{0.0792, -0.2526, 0.0578, 0.0578, 0.0578},
	}
	for _, name := range []string{"../test/charges.ctf", "../test/charges.ctz", "../test/charges.ctr"} {
		w, err := NewWriter(name, len(symbols), map[string]string{"molecule": "fluoromethane"})
		if err != nil {
			Te.Fatal(err)
		}
		for _, q := range tables {
			err = w.WNext(symbols, q)
			if err != nil {
				Te.Fatal(err)
			}
		}
		w.Close()
		r, header, err := New(name)
		if err != nil {
			Te.Fatal(err)
		}
		if header["molecule"] != "fluoromethane" {
			Te.Errorf("%s: header not recovered: %v", name, header)
		}
		if r.Len() != len(symbols) {
			Te.Errorf("%s: expected %d atoms, got %d", name, len(symbols), r.Len())
		}
		read := 0
		for {
			q, s, err := r.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				Te.Fatal(err)
			}
			for i, v := range q {
				if math.Abs(v-tables[read][i]) > 1e-6 {
					Te.Errorf("%s: table %d atom %d: expected %f, got %f", name, read, i, tables[read][i], v)
				}
				if s[i] != symbols[i] {
					Te.Errorf("%s: table %d atom %d: expected symbol %s, got %s", name, read, i, symbols[i], s[i])
				}
			}
			read++
		}
		if read != len(tables) {
			Te.Errorf("%s: expected %d tables, got %d", name, len(tables), read)
		}
	}
}

//A NaN charge (an atom with no parameters) must survive the round trip.
func TestCTFNaN(Te *testing.T) {
	name := "../test/nan.ctf"
	symbols := []string{"C", "Si"}
	charges := []float64{0.05, math.NaN()}
	w, err := NewWriter(name, 2, nil)
	if err != nil {
		Te.Fatal(err)
	}
	err = w.WNext(symbols, charges)
	if err != nil {
		Te.Fatal(err)
	}
	w.Close()
	r, _, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	q, _, err := r.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(q[1]) {
		Te.Errorf("Expected NaN for the unparametrized atom, got %f", q[1])
	}
	if math.Abs(q[0]-0.05) > 1e-6 {
		Te.Errorf("Expected 0.05 for the first atom, got %f", q[0])
	}
	r.Close()
}

func TestCTFWrongInput(Te *testing.T) {
	w, err := NewWriter("../test/wrong.ctf", 3, nil)
	if err != nil {
		Te.Fatal(err)
	}
	defer w.Close()
	err = w.WNext([]string{"C"}, []float64{0.1})
	if err == nil {
		Te.Error("Expected an error for a mismatched table size")
	}
	err = w.WNext([]string{"C", "H", "H"}, nil)
	if err == nil {
		Te.Error("Expected an error for nil charges")
	}
}
