/*
 * doc.go, part of gocharges.
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

/*Package chem computes Gasteiger-Marsili (PEOE) partial charges for small
molecules from their topology alone, and provides the atom, topology and
molecule structures, plus the file reading/writing, needed to get there.


	**goCharges Capabilities**

    Computes PEOE (partial equalization of orbital electronegativity)
	partial charges from element identities, formal charges and
	connectivity. No coordinates and no quantum chemistry involved.

    Reads/writes SDF (V2000) and XYZ files.

    Assigns bonds from coordinates with a simple distance criterion,
	for formats, like XYZ, which don't carry connectivity.

    Exposes the bonded topology as a gonum graph (subpackage chemgraph),
	so gonum's graph algorithms can be used on molecules.

    Plots per-atom charges (subpackage chemplot).

    Writes/reads compressed charge tables for many molecules
	(subpackage ctf).

The charge model follows Gasteiger and Marsili, Tetrahedron 36, 3219-3288
(1980). It operates on sigma-bonded frameworks; it does not handle expanded
pi-electron systems such as aromatic rings. Atoms for which no
electronegativity parameters exist get a NaN charge, which can spread to
bonded neighbors on successive iterations; the functions involved report
those cases through explicit Warning values, never by logging.

The PEOE relaxation mutates a single shared charge buffer bond by bond, so
the order in which bonds are visited is part of the result. Every bond list
built by this library is kept in a canonical order (ascending on the pair of
atom indexes) to make results reproducible across runs and implementations.*/
package chem
