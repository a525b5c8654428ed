/*
 * bonds_test.go, part of gocharges.
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
	"testing"
)

//Ethanol has 8 covalent bonds: C-C, C-O, O-H and 5 C-H.
func TestAssignBonds(Te *testing.T) {
	mol, err := XYZRead("test/ethanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	err = AssignBonds(mol.Coords, mol.Topology)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := mol.Bonds()
	if len(bonds) != 8 {
		Te.Fatalf("Expected 8 bonds for ethanol, got %d", len(bonds))
	}
	counts := map[string]int{}
	for _, b := range bonds {
		s1, s2 := b.At1.Symbol, b.At2.Symbol
		if s1 > s2 {
			s1, s2 = s2, s1
		}
		counts[s1+"-"+s2]++
	}
	fmt.Println("Ethanol bonds:", counts)
	want := map[string]int{"C-C": 1, "C-O": 1, "C-H": 5, "H-O": 1}
	for k, v := range want {
		if counts[k] != v {
			Te.Errorf("Expected %d %s bonds, got %d", v, k, counts[k])
		}
	}
}

//The global bond list must come out in canonical order: for each bond the
//lower atom index first, and the bonds sorted by their atom index pairs.
func TestBondCanonicalOrder(Te *testing.T) {
	mol, err := XYZRead("test/ethanol.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	err = AssignBonds(mol.Coords, mol.Topology)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := mol.Bonds()
	for k, b := range bonds {
		i, j := b.At1.Index(), b.At2.Index()
		if i >= j {
			Te.Errorf("Bond %d: atom indexes not in ascending order: %d, %d", k, i, j)
		}
		if k == 0 {
			continue
		}
		pi, pj := bonds[k-1].At1.Index(), bonds[k-1].At2.Index()
		if pi > i || (pi == i && pj >= j) {
			Te.Errorf("Bonds %d and %d out of canonical order: (%d,%d) before (%d,%d)", k-1, k, pi, pj, i, j)
		}
	}
}

//SetBonds normalizes whatever order the caller supplies.
func TestSetBondsNormalization(Te *testing.T) {
	ats := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	top, err := MakeTopology(ats, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	//both reversed within the bond and out of order between bonds
	bonds := []*Bond{
		{Index: 0, At1: ats[2], At2: ats[0], Order: 1},
		{Index: 1, At1: ats[1], At2: ats[0], Order: 1},
	}
	err = top.SetBonds(bonds)
	if err != nil {
		Te.Fatal(err)
	}
	got := top.Bonds()
	pairs := [][2]int{{0, 1}, {0, 2}}
	for k, b := range got {
		if b.At1.Index() != pairs[k][0] || b.At2.Index() != pairs[k][1] {
			Te.Errorf("Bond %d: expected atoms %v, got (%d,%d)", k, pairs[k], b.At1.Index(), b.At2.Index())
		}
	}
	if len(ats[0].Bonds) != 2 || len(ats[1].Bonds) != 1 || len(ats[2].Bonds) != 1 {
		Te.Error("Per-atom bond lists not rebuilt correctly")
	}
}

func TestRemoveBond(Te *testing.T) {
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
	err = RemoveBond(top.Bonds()[0], top)
	if err != nil {
		Te.Fatal(err)
	}
	if len(top.Bonds()) != 1 {
		Te.Fatalf("Expected 1 bond after removal, got %d", len(top.Bonds()))
	}
	if len(ats[1].Bonds) != 0 {
		Te.Error("Removed bond still present in the atom's bond list")
	}
}
