/*
 * bonds.go, part of gocharges.
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
	"sort"

	v3 "github.com/rmera/gocharges/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond is an undirected bond between two atoms of a topology.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64 //Order 0 means undetermined
}

// Cross returns the atom of the bond that is not the origin given.
// It panics if the origin is not part of the bond, as that got to be
// a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.index == B.At1.index {
		return B.At2
	}
	if origin.index == B.At2.index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//return a new *Bond slice with the bond with index id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//bondIn returns true if the slice contains a bond with the index given.
func bondIn(bonds []*Bond, id int) bool {
	for _, v := range bonds {
		if v.Index == id {
			return true
		}
	}
	return false
}

// sortBonds puts the bonds in the canonical order used throughout the
// library: within each bond the atom with the smaller index first, and the
// list ascending by those index pairs. The PEOE relaxation applies charge
// transfers bond by bond on a shared buffer, so the enumeration order is
// part of the result, not an implementation detail.
func sortBonds(bonds []*Bond) {
	for _, b := range bonds {
		if b.At1.index > b.At2.index {
			b.At1, b.At2 = b.At2, b.At1
		}
	}
	sort.SliceStable(bonds, func(i, j int) bool {
		if bonds[i].At1.index != bonds[j].At1.index {
			return bonds[i].At1.index < bonds[j].At1.index
		}
		return bonds[i].At2.index < bonds[j].At2.index
	})
}

// RemoveBond removes the bond b from both its atoms, and from the global bond
// list of mol, if mol has one. It returns an error if the bond was not
// registered in either of its atoms.
func RemoveBond(b *Bond, mol *Topology) error {
	lenb1 := len(b.At1.Bonds)
	lenb2 := len(b.At2.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
	if mol.bonds != nil && bondIn(mol.bonds, b.Index) {
		mol.bonds = takefromslice(mol.bonds, b.Index)
	}
	err := new(CError)
	errs := 0
	err.msg = fmt.Sprintf("Failed to remove bond Index:%d", b.Index)
	if len(b.At1.Bonds) == lenb1 {
		err.msg = err.msg + fmt.Sprintf(" from atom. Index:%d", b.At1.index)
		err.Decorate("RemoveBond")
		errs++
	}
	if len(b.At2.Bonds) == lenb2 {
		if errs > 0 {
			err.msg = err.msg + " and"
		}
		err.msg = err.msg + fmt.Sprintf(" from atom. Index:%d", b.At2.index)
		err.Decorate("RemoveBond")
		errs++
	}
	if errs > 0 {
		return err
	}
	return nil
}

// AssignBonds assigns bonds to a molecule based on a simple distance
// criterion, similar to that described in DOI:10.1186/1758-2946-3-33.
// It fills the per-atom bond lists and the global, canonically ordered bond
// list of the topology. It might get slow for large systems; it's really not
// thought for proteins or macromolecules.
func AssignBonds(coord *v3.Matrix, mol *Topology) error {
	var t1, t2 *v3.Matrix
	var at1, at2 *Atom
	mol.FillIndexes()
	for _, at := range mol.Atoms {
		at.Bonds = nil
	}
	t3 := v3.Zeros(1)
	bonds := make([]*Bond, 0, 10)
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		t1 = coord.VecView(i)
		at1 = mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at1.Symbol, i)
			err.Decorate("AssignBonds")
			return err
		}
		for j := i + 1; j < tot; j++ {
			t2 = coord.VecView(j)
			at2 = mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				err := new(CError)
				err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at2.Symbol, j)
				err.Decorate("AssignBonds")
				return err
			}
			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b) //just to easily keep track of them.
				nextIndex++
			}
		}
	}

	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			err := RemoveBond(at.Bonds[len(at.Bonds)-1], mol) //we remove the longest bond
			if err != nil {
				return errDecorate(err, "AssignBonds")
			}
		}
	}
	kept := make([]*Bond, 0, len(bonds))
	for _, b := range bonds {
		if bondIn(b.At1.Bonds, b.Index) {
			kept = append(kept, b)
		}
	}
	sortBonds(kept)
	mol.bonds = kept
	return nil
}
