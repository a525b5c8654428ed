/*
 * chem.go, part of gocharges.
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
 * goCharges is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

import (
	"fmt"

	v3 "github.com/rmera/gocharges/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

// Atom contains one atom of a topology. Coordinates, when present, live in a
// separate matrix (see Molecule).
type Atom struct {
	Name    string  //PDB/SDF-style name, if any
	ID      int     //The ID given in the source file, when read from one
	Molname string
	Molid   int
	Chain   string
	Mass    float64
	Charge  float64 //formal charge, in elementary charge units
	Symbol  string
	Bonds   []*Bond //bonds in which this atom takes part
	index   int     //position of the atom in its Topology, filled by FillIndexes
}

//Atom methods

// Index returns the position of the atom in its topology.
// It is only meaningful after FillIndexes has been called
// on the topology.
func (A *Atom) Index() int {
	return A.index
}

// Copy returns a copy of the Atom object. Bonds are not copied:
// the new atom has no bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.ID = A.ID
	Newat.Molname = A.Molname
	Newat.Molid = A.Molid
	Newat.Chain = A.Chain
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Symbol = A.Symbol
	Newat.index = A.index
	return Newat
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time
// (i.e. everything except for coordinates).
type Topology struct {
	Atoms    []*Atom
	bonds    []*Bond //nil means no bond information, not zero bonds
	charge   int
	unpaired int
	fcharged bool //whether formal charges have been assigned to the atoms
}

// MakeTopology makes a topology from ats atoms, with total charge charge and
// unpaired unpaired electrons, and returns it. It returns an error if given
// a nil slice. It doesn't check for consistency of the charge or unpaired
// electrons.
func MakeTopology(ats []*Atom, charge, unpaired int) (*Topology, error) {
	if ats == nil {
		return nil, &CError{msg: "Supplied a nil Atom slice", deco: []string{"MakeTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	top.unpaired = unpaired
	top.FillIndexes()
	return top, nil
}

/*Topology methods*/

// Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

// Unpaired gets the number of unpaired electrons in the topology
func (T *Topology) Unpaired() int {
	return T.unpaired
}

// SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

// SetUnpaired sets the number of unpaired electrons in the topology to i
func (T *Topology) SetUnpaired(i int) {
	T.unpaired = i
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// SetAtom sets the (i+1)th Atom of the topology to at.
// Panics if out of range
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("Topology: Tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
	at.index = i
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// FillIndexes sets the index of each atom to its current position in the
// Atoms slice. Bonds reference atoms through these indexes, so it must be
// called again after any reordering.
func (T *Topology) FillIndexes() {
	for key, val := range T.Atoms {
		val.index = key
	}
}

// Bonds returns all the bonds in the topology, in the canonical order
// (ascending on the pair of atom indexes), or nil if no bond information has
// been associated to the topology.
func (T *Topology) Bonds() []*Bond {
	return T.bonds
}

// SetBonds associates the given bonds to the topology, replacing any previous
// bond information. It rebuilds the per-atom bond lists and normalizes the
// global list to the canonical order. A non-nil, empty slice is a valid
// bond assignment with zero bonds. Bonds with an endpoint out of range cause
// an error, in which case the topology is left unchanged.
func (T *Topology) SetBonds(bonds []*Bond) error {
	if bonds == nil {
		return &CError{msg: "Supplied a nil bond slice", deco: []string{"SetBonds"}}
	}
	T.FillIndexes()
	for _, b := range bonds {
		if b.At1 == nil || b.At2 == nil {
			return &CError{msg: fmt.Sprintf("Bond %d has at least one nil atom", b.Index), deco: []string{"SetBonds"}}
		}
		if b.At1.index >= T.Len() || b.At2.index >= T.Len() {
			return &CError{msg: fmt.Sprintf("Bond %d has at least one atom out of range", b.Index), deco: []string{"SetBonds"}}
		}
	}
	for _, at := range T.Atoms {
		at.Bonds = nil
	}
	sortBonds(bonds)
	for _, b := range bonds {
		b.At1.Bonds = append(b.At1.Bonds, b)
		b.At2.Bonds = append(b.At2.Bonds, b)
	}
	T.bonds = bonds
	return nil
}

// SetFormalCharges assigns the given formal charges, in order, to the atoms
// of the topology, and marks the topology as formally charged. It returns an
// error if the slice doesn't match the number of atoms.
func (T *Topology) SetFormalCharges(charges []float64) error {
	if len(charges) != T.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched charges (%d) and atoms (%d)", len(charges), T.Len()), deco: []string{"SetFormalCharges"}}
	}
	for i, v := range charges {
		T.Atoms[i].Charge = v
	}
	T.fcharged = true
	return nil
}

// FormalChargesSet returns true if formal charges have been assigned to the
// atoms of the topology, even if they are all zero.
func (T *Topology) FormalChargesSet() bool {
	return T.fcharged
}

// Masses returns a slice with the masses of the atoms in the topology, and an
// error if any of them is missing.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		thisatom := T.Atom(i)
		if thisatom.Mass == 0 {
			return nil, &CError{msg: fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), deco: []string{"Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

// CopyAtoms returns a copy of the topology. Bond information is not copied,
// as bonds reference the original atoms.
func (T *Topology) CopyAtoms() *Topology {
	Top := new(Topology)
	Top.Atoms = make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		Top.Atoms[key] = val.Copy()
	}
	Top.charge = T.charge
	Top.unpaired = T.unpaired
	Top.fcharged = T.fcharged
	return Top
}

/**Type Molecule**/

// Molecule is a topology with one set of coordinates attached. Only one
// conformer per molecule: this library operates on one atom topology at a
// time.
type Molecule struct {
	*Topology
	Coords *v3.Matrix
}

// MakeMolecule makes a molecule from a topology and coordinates, and returns
// it. It returns an error if given a nil topology, or if the coordinates
// don't match the number of atoms. Coordinates may be nil, for molecules
// built from topology-only sources.
func MakeMolecule(top *Topology, coords *v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, &CError{msg: "Supplied a nil Topology", deco: []string{"MakeMolecule"}}
	}
	if coords != nil && coords.NVecs() != top.Len() {
		return nil, &CError{msg: fmt.Sprintf("Mismatched coordinates (%d) and atoms (%d)", coords.NVecs(), top.Len()), deco: []string{"MakeMolecule"}}
	}
	mol := new(Molecule)
	mol.Topology = top
	mol.Coords = coords
	return mol, nil
}
