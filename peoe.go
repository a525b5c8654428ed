/*
 * peoe.go, part of gocharges.
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
	"sort"
	"strings"
)

// DefaultPEOESteps is the number of iteration steps used by default for the
// PEOE relaxation. Gasteiger and Marsili describe this amount of iteration
// steps as sufficient.
const DefaultPEOESteps = 6

// ENPosHydrogen is the electronegativity, in eV, used for positively charged
// hydrogen. It models the anomalously high electronegativity of a bare proton
// and is not derivable from the quadratic model.
const ENPosHydrogen = 20.02

//Parameters for the electronegativity model of each element, keyed by element
//symbol and then by the number of bonded neighbors. Each entry holds the a, b
//and c coefficients of EN(q) = a + b*q + c*q^2, in electronvolt. Values from
//Gasteiger and Marsili, Tetrahedron 36, 3219-3288 (1980).
var enParameters = map[string]map[int][3]float64{
	"H": {
		1: {7.17, 6.24, -0.56},
	},
	"C": {
		4: {7.98, 9.18, 1.88},
		3: {8.79, 9.18, 1.88},
		2: {10.39, 9.45, 0.73},
	},
	"N": {
		//Both protonated (e.g. a terminal amino group, 4 binding partners)
		//and unprotonated (3 binding partners) nitrogen.
		4: {11.54, 10.82, 1.36},
		3: {11.54, 10.82, 1.36},
		2: {12.87, 11.15, 0.85},
		1: {15.68, 11.7, -0.27},
	},
	"O": {
		2: {14.18, 12.92, 1.39},
		1: {17.07, 13.79, 0.47},
	},
	"S": {
		2: {10.14, 9.13, 1.38},
	},
	"F": {
		1: {14.66, 13.85, 2.31},
	},
	"Cl": {
		1: {11.00, 9.69, 1.35},
	},
	"Br": {
		1: {10.08, 8.47, 1.16},
	},
	"I": {
		1: {9.90, 7.96, 0.96},
	},
}

//The a+b+c sum for neutral hydrogen (12.85 eV), which marks the atoms whose
//positive-ion electronegativity must be replaced by ENPosHydrogen. It is
//summed here from the table itself, in the same order as in the engine, so
//the float comparison there is exact by construction.
var enPlusNeutralH = func() float64 {
	p := enParameters["H"][1]
	return p[0] + p[1] + p[2]
}()

// A Warning reports a non-fatal issue found while computing partial charges.
// Warnings are advisory: the computation proceeds, with the defaults or
// degradations described in each message.
type Warning struct {
	Message  string
	Elements []string //the affected element symbols, if applicable
}

func (W *Warning) String() string {
	return W.Message
}

//peoeParameters gathers the electronegativity coefficients for every atom of
//mol, using the number of bonded neighbors of each atom as its valence key.
//Atoms whose (element, valence) combination is not in the table get NaN
//coefficients, and their element symbol is collected, once per distinct
//element, in the second return value, sorted alphabetically.
func peoeParameters(mol Atomer) ([][3]float64, []string) {
	nan := math.NaN()
	params := make([][3]float64, mol.Len())
	var missing []string
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		p, ok := enParameters[at.Symbol][len(at.Bonds)]
		if !ok {
			params[i] = [3]float64{nan, nan, nan}
			if !isInString(missing, at.Symbol) {
				missing = append(missing, at.Symbol)
			}
			continue
		}
		params[i] = p
	}
	sort.Strings(missing)
	return params, missing
}

// PartialCharges computes the PEOE (Gasteiger-Marsili) partial charge of each
// atom of mol, from the element, formal charge and bonded neighbors of every
// atom. It returns a slice with one charge per atom, in order, a slice of
// non-fatal warnings (or nil), and an error.
//
// steps is the number of iteration steps, trading cost for precision; use
// DefaultPEOESteps unless you have a reason not to. With steps <= 0 the
// initial charges are returned unmodified.
//
// If a charges slice is given, it provides the initial (formal) charges, and
// that same slice is mutated in place and returned: the aliasing is part of
// the contract, so callers can own the buffer. With no charges argument, the
// formal charges annotated on mol are used if present (see FormalCharger),
// and otherwise all initial charges are taken as zero and a warning is
// issued.
//
// mol must have bond information associated: a nil bond list is an error,
// detected before any computation. Bonds are processed in exactly the order
// mol.Bonds() yields them, which for topologies built by this library is the
// canonical ascending order. Atoms with no parameters for their element and
// valence get a NaN charge, reported in an aggregated warning; the NaN can
// spread to their bonded neighbors on later iterations, but never across a
// parametrized atom in the same pass.
func PartialCharges(mol Bonder, steps int, charges ...[]float64) ([]float64, []*Warning, error) {
	bonds := mol.Bonds()
	if bonds == nil {
		err := new(CError)
		err.msg = "The input topology doesn't have bond information associated"
		err.Decorate("PartialCharges")
		return nil, nil, err
	}
	n := mol.Len()
	var warns []*Warning
	var q []float64
	switch {
	case len(charges) > 0 && charges[0] != nil:
		if len(charges[0]) != n {
			err := new(CError)
			err.msg = fmt.Sprintf("Mismatched charges (%d) and atoms (%d)", len(charges[0]), n)
			err.Decorate("PartialCharges")
			return nil, nil, err
		}
		q = charges[0]
	default:
		q = make([]float64, n)
		if fc, ok := mol.(FormalCharger); ok && fc.FormalChargesSet() {
			for i := 0; i < n; i++ {
				q[i] = mol.Atom(i).Charge
			}
		} else {
			warns = append(warns, &Warning{Message: "A charge slice was neither given as an argument, nor are formal charges annotated on the topology. The formal charge of every atom is assumed to be zero"})
		}
	}
	params, unparametrized := peoeParameters(mol)
	if len(unparametrized) > 0 {
		warns = append(warns, &Warning{
			Message:  fmt.Sprintf("Parameters required for the computation of electronegativity aren't available for the following elements: %s. Their charge is given as NaN", strings.Join(unparametrized, ", ")),
			Elements: unparametrized,
		})
	}
	en := make([]float64, n)
	enplus := make([]float64, n)
	damping := 1.0
	for s := 0; s < steps; s++ {
		//the damping factor is halved at the beginning of each iteration
		//step to guarantee rapid convergence.
		damping *= 0.5
		//Electronegativities are evaluated fresh from the current charges,
		//once per iteration step, not once per bond.
		for i := 0; i < n; i++ {
			p := params[i]
			en[i] = p[0] + p[1]*q[i] + p[2]*q[i]*q[i]
			ep := p[0] + p[1] + p[2]
			if ep == enPlusNeutralH {
				ep = ENPosHydrogen
			}
			enplus[i] = ep
		}
		for _, b := range bonds {
			i := b.At1.index
			j := b.At2.index
			nani := math.IsNaN(en[i])
			nanj := math.IsNaN(en[j])
			switch {
			case nani && nanj:
				q[i] = math.NaN()
				q[j] = math.NaN()
			case nani:
				//Only the unparametrized atom is poisoned. Its neighbor,
				//for which there are parameters, could take part in other
				//bonds, so setting both charges to NaN would falsify the
				//result.
				q[i] = math.NaN()
			case nanj:
				q[j] = math.NaN()
			default:
				//The divisor is the positive-ion electronegativity of the
				//donor, i.e. of whichever atom has the smaller EN.
				divisor := enplus[j]
				if en[j] > en[i] {
					divisor = enplus[i]
				}
				transfer := damping * (en[j] - en[i]) / divisor
				q[i] += transfer
				q[j] -= transfer
			}
		}
	}
	return q, warns, nil
}

//Some internal convenience functions.

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
