/*
 * sdf.go, part of gocharges.
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
	"math"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gocharges/v3"
)

//charge codes of the V2000 atom block. 0 is neutral, 4 is a doublet radical
//(also neutral), the rest map to 4-code.
func sdfChargeFromCode(code int) float64 {
	if code <= 0 || code > 7 || code == 4 {
		return 0
	}
	return float64(4 - code)
}

// SDFRead reads the first molecule of an SDF or MOL file, in V2000 format.
// The bond block of the file becomes the bond information of the molecule,
// in canonical order, and the formal charges (from the atom block, possibly
// superseded by M CHG property lines) become its formal-charge annotation,
// so the returned molecule is ready for PartialCharges.
func SDFRead(sdfname string) (*Molecule, error) {
	sdffile, err := os.Open(sdfname)
	if err != nil {
		return nil, err
	}
	defer sdffile.Close()
	sdf := bufio.NewReader(sdffile)
	fail := func(msg string) (*Molecule, error) {
		return nil, &CError{msg: fmt.Sprintf("%s, file %s", msg, sdfname), deco: []string{"SDFRead"}}
	}
	title, err := sdf.ReadString('\n')
	if err != nil {
		return fail("Can't read the header")
	}
	title = strings.TrimSpace(title)
	for i := 0; i < 2; i++ { //program line and comment line
		if _, err = sdf.ReadString('\n'); err != nil {
			return fail("Can't read the header")
		}
	}
	counts, err := sdf.ReadString('\n')
	if err != nil || len(counts) < 6 {
		return fail("Can't read the counts line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil {
		return fail("Can't read the number of atoms")
	}
	nbonds, err := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err != nil {
		return fail("Can't read the number of bonds")
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err := sdf.ReadString('\n')
		if err != nil || len(line) < 34 {
			return fail(fmt.Sprintf("Ill formed atom line %d", i+1))
		}
		at := new(Atom)
		at.ID = i + 1
		at.Molname = title
		at.Symbol = strings.TrimSpace(line[31:34])
		at.Mass = symbolMass[at.Symbol]
		if len(line) >= 39 {
			code, err := strconv.Atoi(strings.TrimSpace(line[36:39]))
			if err == nil {
				at.Charge = sdfChargeFromCode(code)
			}
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			xyz[j], err = strconv.ParseFloat(strings.TrimSpace(line[j*10:(j+1)*10]), 64)
			if err != nil {
				return fail(fmt.Sprintf("Can't read coordinates in atom line %d", i+1))
			}
		}
		coords = append(coords, xyz[:]...)
		atoms[i] = at
	}
	top, err := MakeTopology(atoms, 0, 0)
	if err != nil {
		return nil, errDecorate(err, "SDFRead")
	}
	bonds := make([]*Bond, 0, nbonds)
	for i := 0; i < nbonds; i++ {
		line, err := sdf.ReadString('\n')
		if err != nil || len(line) < 9 {
			return fail(fmt.Sprintf("Ill formed bond line %d", i+1))
		}
		a1, err1 := strconv.Atoi(strings.TrimSpace(line[0:3]))
		a2, err2 := strconv.Atoi(strings.TrimSpace(line[3:6]))
		order, err3 := strconv.Atoi(strings.TrimSpace(line[6:9]))
		if err1 != nil || err2 != nil || err3 != nil {
			return fail(fmt.Sprintf("Ill formed bond line %d", i+1))
		}
		if a1 < 1 || a1 > natoms || a2 < 1 || a2 > natoms {
			return fail(fmt.Sprintf("Bond line %d references a non-existent atom", i+1))
		}
		b := &Bond{Index: i, At1: top.Atom(a1 - 1), At2: top.Atom(a2 - 1), Order: float64(order)}
		bonds = append(bonds, b)
	}
	//The properties block. An M CHG line supersedes all the atom-block
	//charges, so the first one found resets them.
	chgReset := false
	for {
		line, err := sdf.ReadString('\n')
		if err != nil {
			break //no properties block, or no terminator. We take what we have.
		}
		if strings.HasPrefix(line, "M  END") || strings.HasPrefix(line, "$$$$") {
			break
		}
		if !strings.HasPrefix(line, "M  CHG") {
			continue
		}
		if !chgReset {
			for _, at := range atoms {
				at.Charge = 0
			}
			chgReset = true
		}
		fields := strings.Fields(line)
		//fields: M CHG count atom charge atom charge ...
		for i := 3; i+1 < len(fields); i += 2 {
			id, err1 := strconv.Atoi(fields[i])
			chg, err2 := strconv.Atoi(fields[i+1])
			if err1 != nil || err2 != nil || id < 1 || id > natoms {
				return fail("Ill formed M CHG line")
			}
			atoms[id-1].Charge = float64(chg)
		}
	}
	if err := top.SetBonds(bonds); err != nil {
		return nil, errDecorate(err, "SDFRead")
	}
	top.fcharged = true //the V2000 atom block always carries a charge column
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, &CError{msg: err.Error(), deco: []string{"SDFRead"}}
	}
	return MakeMolecule(top, mcoords)
}

// SDFWrite writes mol and its coordinates as a V2000 molfile with the name
// given, which will be created, or overwritten if it exists. Non-zero formal
// charges go to M CHG lines. If a charges slice is given, it is written as a
// PEOE_CHARGES data item, one value per atom in order; NaN entries are
// written as "NaN".
func SDFWrite(sdfname string, coords *v3.Matrix, mol *Molecule, charges ...[]float64) error {
	if mol == nil || coords == nil {
		return &CError{msg: "Supplied a nil molecule or coordinates", deco: []string{"SDFWrite"}}
	}
	if coords.NVecs() != mol.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched coordinates (%d) and atoms (%d)", coords.NVecs(), mol.Len()), deco: []string{"SDFWrite"}}
	}
	if len(charges) > 0 && charges[0] != nil && len(charges[0]) != mol.Len() {
		return &CError{msg: fmt.Sprintf("Mismatched charges (%d) and atoms (%d)", len(charges[0]), mol.Len()), deco: []string{"SDFWrite"}}
	}
	out, err := os.Create(sdfname)
	if err != nil {
		return &CError{msg: err.Error(), deco: []string{"SDFWrite"}}
	}
	defer out.Close()
	name := "UNNAMED"
	if mol.Len() > 0 && mol.Atom(0).Molname != "" {
		name = mol.Atom(0).Molname
	}
	bonds := mol.Bonds()
	fmt.Fprintf(out, "%s\n  goCharges\n\n", name)
	fmt.Fprintf(out, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", mol.Len(), len(bonds))
	for i := 0; i < mol.Len(); i++ {
		fmt.Fprintf(out, "%10.4f%10.4f%10.4f %-3s 0  0  0  0  0  0  0  0  0  0  0  0\n",
			coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), mol.Atom(i).Symbol)
	}
	for _, b := range bonds {
		order := int(b.Order)
		if order == 0 {
			order = 1
		}
		fmt.Fprintf(out, "%3d%3d%3d  0\n", b.At1.Index()+1, b.At2.Index()+1, order)
	}
	charged := make([][2]int, 0, 4)
	for i := 0; i < mol.Len(); i++ {
		if c := mol.Atom(i).Charge; c != 0 && !math.IsNaN(c) {
			charged = append(charged, [2]int{i + 1, int(c)})
		}
	}
	//M CHG lines take at most 8 atom/charge pairs each.
	for len(charged) > 0 {
		n := len(charged)
		if n > 8 {
			n = 8
		}
		fmt.Fprintf(out, "M  CHG%3d", n)
		for _, p := range charged[:n] {
			fmt.Fprintf(out, " %3d %3d", p[0], p[1])
		}
		fmt.Fprintf(out, "\n")
		charged = charged[n:]
	}
	fmt.Fprintf(out, "M  END\n")
	if len(charges) > 0 && charges[0] != nil {
		fmt.Fprintf(out, "> <PEOE_CHARGES>\n")
		for _, v := range charges[0] {
			fmt.Fprintf(out, "%.6f\n", v)
		}
		fmt.Fprintf(out, "\n")
	}
	_, err = fmt.Fprintf(out, "$$$$\n")
	if err != nil {
		return &CError{msg: err.Error(), deco: []string{"SDFWrite"}}
	}
	return nil
}
