/*
 * files.go, part of gocharges.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gocharges/v3"
)

// XYZRead reads an XYZ file and returns a molecule. XYZ files carry no
// connectivity and no formal charges, so the returned molecule has no bond
// information (use AssignBonds) and no formal-charge annotation.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	xyz := bufio.NewReader(xyzfile)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, &CError{msg: fmt.Sprintf("Ill formatted XYZ file %s: %s", xyzname, err.Error()), deco: []string{"XYZRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, &CError{msg: fmt.Sprintf("Ill formatted XYZ file %s: can't read the number of atoms", xyzname), deco: []string{"XYZRead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	_, _ = xyz.ReadString('\n') //We don't care about the comment line
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && i == natoms-1) {
			return nil, &CError{msg: fmt.Sprintf("Failed to read line %d in file %s: %s", i+2, xyzname, err.Error()), deco: []string{"XYZRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &CError{msg: fmt.Sprintf("Line %d in file %s ill formed", i+2, xyzname), deco: []string{"XYZRead"}}
		}
		at := new(Atom)
		at.Symbol = fields[0]
		at.Mass = symbolMass[at.Symbol]
		at.ID = i + 1
		errs := make([]error, 3)
		coords[i*3], errs[0] = strconv.ParseFloat(fields[1], 64)
		coords[i*3+1], errs[1] = strconv.ParseFloat(fields[2], 64)
		coords[i*3+2], errs[2] = strconv.ParseFloat(fields[3], 64)
		for _, v := range errs {
			if v != nil {
				return nil, &CError{msg: fmt.Sprintf("Couldn't read coordinates in line %d of file %s: %s", i+2, xyzname, v.Error()), deco: []string{"XYZRead"}}
			}
		}
		atoms[i] = at
	}
	top, err := MakeTopology(atoms, 0, 0)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, &CError{msg: err.Error(), deco: []string{"XYZRead"}}
	}
	return MakeMolecule(top, mcoords)
}

// XYZWrite writes the given coordinates and atoms in an XYZ file with the
// name given, which will be created for that. If the file exists it will be
// overwritten.
func XYZWrite(xyzname string, coords *v3.Matrix, mol Atomer) error {
	if coords == nil || mol == nil {
		return &CError{msg: "Supplied nil coordinates or molecule", deco: []string{"XYZWrite"}}
	}
	if coords.NVecs() != mol.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched coordinates (%d) and atoms (%d)", coords.NVecs(), mol.Len()), deco: []string{"XYZWrite"}}
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return &CError{msg: err.Error(), deco: []string{"XYZWrite"}}
	}
	defer out.Close()
	fmt.Fprintf(out, "%-4d\n", mol.Len())
	fmt.Fprintf(out, "\n")
	for i := 0; i < mol.Len(); i++ {
		_, err = fmt.Fprintf(out, "%-2s  %8.3f%8.3f%8.3f \n", mol.Atom(i).Symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return &CError{msg: err.Error(), deco: []string{"XYZWrite"}}
		}
	}
	return nil
}
