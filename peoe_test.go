/*
 * peoe_test.go, part of gocharges.
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

package chem

import (
	"fmt"
	"math"
	"testing"
)

//Reference values for fluoromethane (CH3F, atoms in the order C, F, H, H, H)
//from Gasteiger and Marsili, Tetrahedron 36, 3219-3288 (1980).
func TestFluoromethane(Te *testing.T) {
	mol, err := SDFRead("test/fluoromethane.sdf")
	if err != nil {
		Te.Fatal(err)
	}
	wants := map[int][]float64{
		1:                {0.1147, -0.1754, 0.0202, 0.0202, 0.0202},
		DefaultPEOESteps: {0.0792, -0.2526, 0.0578, 0.0578, 0.0578},
	}
	for steps, want := range wants {
		charges, warnings, err := PartialCharges(mol, steps)
		if err != nil {
			Te.Fatal(err)
		}
		if warnings != nil {
			Te.Errorf("Unexpected warnings for fluoromethane: %v", warnings)
		}
		for i, w := range want {
			if math.Abs(charges[i]-w) > 1e-4 {
				Te.Errorf("With %d steps, atom %d: expected charge %.4f, got %.4f", steps, i, w, charges[i])
			}
		}
		fmt.Printf("Fluoromethane charges after %d steps: %v\n", steps, charges)
	}
}

//With zero (or negative) iteration steps, the initial charges come back
//unmodified, in the very slice the caller gave.
func TestZeroSteps(Te *testing.T) {
	mol, err := SDFRead("test/fluoromethane.sdf")
	if err != nil {
		Te.Fatal(err)
	}
	initial := []float64{0.5, -0.5, 0, 0, 0}
	charges, _, err := PartialCharges(mol, 0, initial)
	if err != nil {
		Te.Fatal(err)
	}
	if &charges[0] != &initial[0] {
		Te.Error("The returned slice does not alias the one given")
	}
	want := []float64{0.5, -0.5, 0, 0, 0}
	for i, w := range want {
		if charges[i] != w {
			Te.Errorf("Atom %d: expected charge %.4f, got %.4f", i, w, charges[i])
		}
	}
}

//The caller-given buffer must be used in place for the computation too.
func TestChargeBufferAliasing(Te *testing.T) {
	mol, err := SDFRead("test/fluoromethane.sdf")
	if err != nil {
		Te.Fatal(err)
	}
	buffer := make([]float64, mol.Len())
	charges, _, err := PartialCharges(mol, 1, buffer)
	if err != nil {
		Te.Fatal(err)
	}
	if &charges[0] != &buffer[0] {
		Te.Error("The returned slice does not alias the one given")
	}
	if math.Abs(buffer[0]-0.1147) > 1e-4 {
		Te.Errorf("The given buffer was not mutated in place: %v", buffer)
	}
	short := make([]float64, mol.Len()-1)
	_, _, err = PartialCharges(mol, 1, short)
	if err == nil {
		Te.Error("Expected an error for a mismatched charge buffer")
	}
}

//A topology without bond information is an error, not a panic or a
//silently-wrong all-zeros result.
func TestNoBondInformation(Te *testing.T) {
	ats := []*Atom{{Symbol: "C"}, {Symbol: "O"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	_, _, err = PartialCharges(top, DefaultPEOESteps)
	if err == nil {
		Te.Error("Expected an error for a topology without bonds")
	}
}

//An empty bond list is legal: every atom is then unparametrized (valence 0)
//but nothing is transferred, so nothing changes.
func TestEmptyBondList(Te *testing.T) {
	ats := []*Atom{{Symbol: "O"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	err = top.SetBonds([]*Bond{})
	if err != nil {
		Te.Fatal(err)
	}
	charges, _, err := PartialCharges(top, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	if charges[0] != 0 {
		Te.Errorf("Expected an unchanged charge, got %f", charges[0])
	}
}

//Electrons only move along bonds, so the total charge of a neutral
//molecule stays zero.
func TestChargeConservation(Te *testing.T) {
	mol, err := XYZRead("test/ethanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	err = AssignBonds(mol.Coords, mol.Topology)
	if err != nil {
		Te.Fatal(err)
	}
	charges, _, err := PartialCharges(mol, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	total := 0.0
	for _, q := range charges {
		total += q
	}
	if math.Abs(total) > 1e-10 {
		Te.Errorf("Total charge of neutral ethanol is %g, expected 0", total)
	}
	//the hydroxyl oxygen must be the most negative atom
	mostNegative := 0
	for i, q := range charges {
		if q < charges[mostNegative] {
			mostNegative = i
		}
	}
	if mol.Atom(mostNegative).Symbol != "O" {
		Te.Errorf("Expected the oxygen to be the most negative atom, got atom %d (%s)", mostNegative, mol.Atom(mostNegative).Symbol)
	}
}

//Builds H-O-Si: silicon is not parametrized, so its charge must become NaN,
//while the parametrized oxygen and hydrogen keep finite charges.
func TestUnparametrizedPoisoning(Te *testing.T) {
	ats := []*Atom{{Symbol: "H"}, {Symbol: "O"}, {Symbol: "Si"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := []*Bond{
		{Index: 0, At1: ats[0], At2: ats[1], Order: 1},
		{Index: 1, At1: ats[1], At2: ats[2], Order: 1},
	}
	err = top.SetBonds(bonds)
	if err != nil {
		Te.Fatal(err)
	}
	err = top.SetFormalCharges(make([]float64, top.Len()))
	if err != nil {
		Te.Fatal(err)
	}
	charges, warnings, err := PartialCharges(top, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(charges[2]) {
		Te.Errorf("Expected NaN for silicon, got %f", charges[2])
	}
	if math.IsNaN(charges[0]) || math.IsNaN(charges[1]) {
		Te.Errorf("NaN spread past a parametrized atom: %v", charges)
	}
	var found *Warning
	for _, w := range warnings {
		if len(w.Elements) > 0 {
			found = w
		}
	}
	if found == nil {
		Te.Fatal("Expected a warning about unparametrized elements")
	}
	if len(found.Elements) != 1 || found.Elements[0] != "Si" {
		Te.Errorf("Expected the warning to name Si, got %v", found.Elements)
	}
}

//Several atoms of the same missing element yield a single warning naming
//the element once.
func TestUnparametrizedWarningDeduplication(Te *testing.T) {
	ats := []*Atom{{Symbol: "Si"}, {Symbol: "Si"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	err = top.SetBonds([]*Bond{{Index: 0, At1: ats[0], At2: ats[1], Order: 1}})
	if err != nil {
		Te.Fatal(err)
	}
	err = top.SetFormalCharges(make([]float64, top.Len()))
	if err != nil {
		Te.Fatal(err)
	}
	charges, warnings, err := PartialCharges(top, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsNaN(charges[0]) || !math.IsNaN(charges[1]) {
		Te.Errorf("Expected NaN charges, got %v", charges)
	}
	count := 0
	for _, w := range warnings {
		if len(w.Elements) > 0 {
			count++
			if len(w.Elements) != 1 || w.Elements[0] != "Si" {
				Te.Errorf("Expected a single deduplicated element, got %v", w.Elements)
			}
		}
	}
	if count != 1 {
		Te.Errorf("Expected exactly one unparametrized-elements warning, got %d", count)
	}
}

//Without a charge argument and without annotated formal charges, the
//computation proceeds from zero but warns about it.
func TestMissingFormalChargesWarning(Te *testing.T) {
	ats := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := []*Bond{
		{Index: 0, At1: ats[0], At2: ats[1], Order: 1},
		{Index: 1, At1: ats[0], At2: ats[2], Order: 1},
	}
	err = top.SetBonds(bonds)
	if err != nil {
		Te.Fatal(err)
	}
	_, warnings, err := PartialCharges(top, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	if len(warnings) != 1 {
		Te.Fatalf("Expected exactly one warning, got %d", len(warnings))
	}
	err = top.SetFormalCharges(make([]float64, top.Len()))
	if err != nil {
		Te.Fatal(err)
	}
	_, warnings, err = PartialCharges(top, DefaultPEOESteps)
	if err != nil {
		Te.Fatal(err)
	}
	if warnings != nil {
		Te.Errorf("Unexpected warnings with annotated formal charges: %v", warnings)
	}
}

//Two runs over the same input must agree bit for bit.
func TestDeterminism(Te *testing.T) {
	first := make([]float64, 0)
	for run := 0; run < 2; run++ {
		mol, err := SDFRead("test/fluoromethane.sdf")
		if err != nil {
			Te.Fatal(err)
		}
		charges, _, err := PartialCharges(mol, DefaultPEOESteps)
		if err != nil {
			Te.Fatal(err)
		}
		if run == 0 {
			first = append(first, charges...)
			continue
		}
		for i, q := range charges {
			if q != first[i] {
				Te.Errorf("Atom %d: got %v on the first run but %v on the second", i, first[i], q)
			}
		}
	}
}
