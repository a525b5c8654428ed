/*
 * graph.go, part of gocharges.
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

// Package chemgraph exposes a molecular topology as a gonum graph, so the
// graph algorithms in gonum.org/v1/gonum/graph can be used on molecules.
// The main use here is detecting disconnected fragments before a charge
// calculation.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/gocharges"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom wraps a chem.Atom so it satisfies graph.Node.
type Atom struct {
	*chem.Atom
	bonds []*Bond
}

// ID returns the index of the atom in its molecule.
func (A *Atom) ID() int64 {
	return int64(A.Atom.Index())
}

// Bond wraps a chem.Bond so it satisfies graph.Edge and
// graph.WeightedEdge. The weight is the bond order, or 1 if
// the order is not set.
type Bond struct {
	*chem.Bond
	from *Atom
	to   *Atom
}

func (B *Bond) From() graph.Node {
	return B.from
}

func (B *Bond) To() graph.Node {
	return B.to
}

func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, from: B.to, to: B.from}
}

func (B *Bond) Weight() float64 {
	if B.Bond.Order == 0 {
		return 1
	}
	return B.Bond.Order
}

// Atoms is an iterator over a set of atoms, as required by graph.Nodes.
type Atoms struct {
	atoms []*Atom
	curr  int
}

func newAtoms(atoms []*Atom) *Atoms {
	return &Atoms{atoms: atoms, curr: -1}
}

// Len returns the number of atoms remaining in the iterator.
func (A *Atoms) Len() int {
	return len(A.atoms) - A.curr - 1
}

func (A *Atoms) Next() bool {
	A.curr++
	return A.curr < len(A.atoms)
}

func (A *Atoms) Node() graph.Node {
	return A.atoms[A.curr]
}

func (A *Atoms) Reset() {
	A.curr = -1
}

// Topology is a molecular topology viewed as an undirected, weighted
// graph. It satisfies graph.Undirected and graph.Weighted.
type Topology struct {
	atoms []*Atom
	bonds []*Bond
}

// FromTopology builds a graph view of top. The chem.Atom and chem.Bond
// values are shared with top, not copied, so top must not be modified
// while the graph is in use. It panics if top carries no bond
// information, as the caller is expected to have obtained the bonds
// beforehand, say, with chem.AssignBonds.
func FromTopology(top *chem.Topology) *Topology {
	chembonds := top.Bonds()
	if chembonds == nil {
		panic("chemgraph: topology lacks bond information")
	}
	T := &Topology{
		atoms: make([]*Atom, 0, top.Len()),
		bonds: make([]*Bond, 0, len(chembonds)),
	}
	for i := 0; i < top.Len(); i++ {
		T.atoms = append(T.atoms, &Atom{Atom: top.Atom(i)})
	}
	for _, b := range chembonds {
		gb := &Bond{Bond: b, from: T.atoms[b.At1.Index()], to: T.atoms[b.At2.Index()]}
		T.bonds = append(T.bonds, gb)
		gb.from.bonds = append(gb.from.bonds, gb)
		gb.to.bonds = append(gb.to.bonds, &Bond{Bond: b, from: gb.to, to: gb.from})
	}
	return T
}

func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

func (T *Topology) Nodes() graph.Nodes {
	return newAtoms(T.atoms)
}

// From returns the atoms bonded to the atom with the given id.
func (T *Topology) From(id int64) graph.Nodes {
	if id < 0 || id >= int64(len(T.atoms)) {
		return graph.Empty
	}
	at := T.atoms[id]
	neigh := make([]*Atom, 0, len(at.bonds))
	for _, b := range at.bonds {
		neigh = append(neigh, b.to)
	}
	return newAtoms(neigh)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.EdgeBetween(xid, yid) != nil
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.EdgeBetween(uid, vid)
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	if xid == yid {
		return nil
	}
	for _, b := range T.bonds {
		f, t := b.from.ID(), b.to.ID()
		if (f == xid && t == yid) || (f == yid && t == xid) {
			if f == xid {
				return b
			}
			return b.ReversedEdge()
		}
	}
	return nil
}

func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	e := T.EdgeBetween(uid, vid)
	if e == nil {
		return nil
	}
	return e.(*Bond)
}

// Weight returns the order of the bond between xid and yid. As required
// by graph.Weighted, it returns the self-weight 0 when xid equals yid,
// and signals with false when no bond exists.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e := T.EdgeBetween(xid, yid)
	if e == nil {
		return 0, false
	}
	return e.(*Bond).Weight(), true
}

// Fragments returns the covalently connected components of T, each as a
// sorted slice of atom indexes. A molecule in one piece yields exactly
// one fragment.
func (T *Topology) Fragments() [][]int {
	comp := topo.ConnectedComponents(T)
	frags := make([][]int, 0, len(comp))
	for _, c := range comp {
		f := make([]int, 0, len(c))
		for _, n := range c {
			f = append(f, int(n.ID()))
		}
		sort.Ints(f)
		frags = append(frags, f)
	}
	sort.Slice(frags, func(i, j int) bool { return frags[i][0] < frags[j][0] })
	return frags
}
