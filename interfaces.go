/*
 * interfaces.go, part of gocharges.
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

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Bonder is an Atomer that also carries connectivity: a global list of the
// bonds in the topology, each bond covered exactly once. A nil return value
// means that no bond information has been associated to the topology, which
// is different from a valid topology with zero bonds (an empty, non-nil
// slice). The order of the returned slice is significant: PartialCharges
// processes bonds in exactly that order.
type Bonder interface {
	Atomer

	//Bonds returns all bonds in the topology, or nil if no bond
	//information is present.
	Bonds() []*Bond
}

// FormalCharger is implemented by topologies that can tell whether per-atom
// formal charges have actually been assigned, as opposed to every Atom.Charge
// just sitting at its zero value.
type FormalCharger interface {

	//FormalChargesSet returns true if formal charges have been
	//assigned to the atoms (even if they are all zero).
	FormalChargesSet() bool
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the masses of all atoms
	Masses() ([]float64, error)
}
