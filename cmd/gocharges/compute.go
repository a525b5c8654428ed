/*
 * compute.go, part of gocharges.
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

package main

import (
	"fmt"
	"os"
	"strings"

	chem "github.com/rmera/gocharges"
	"github.com/rmera/gocharges/chemgraph"
	"github.com/rmera/gocharges/chemplot"
	"github.com/rmera/gocharges/ctf"
	"github.com/spf13/cobra"
)

var (
	computeSteps int
	computePlot  string
	computeCtf   string
	computeSdf   string
)

var computeCmd = &cobra.Command{
	Use:   "compute molecule.[sdf|mol|xyz]",
	Short: "Compute PEOE partial charges for a molecule",
	Long: `compute reads the given molecule and prints a table of partial
charges to the standard output. SDF/MOL files are expected to carry
connectivity and formal charges; for XYZ files bonds are assigned from
the geometry and all atoms are taken as neutral.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args[0])
	},
}

func init() {
	computeCmd.Flags().IntVarP(&computeSteps, "steps", "s", chem.DefaultPEOESteps, "number of equalization iterations")
	computeCmd.Flags().StringVarP(&computePlot, "plot", "p", "", "write a charge plot to the given name, plus a png extension")
	computeCmd.Flags().StringVarP(&computeCtf, "ctf", "c", "", "write the charges to the given compressed-table (ctf) file")
	computeCmd.Flags().StringVarP(&computeSdf, "sdf", "o", "", "write an SDF file with the charges as a data field")
	rootCmd.AddCommand(computeCmd)
}

func readMolecule(name string) (*chem.Molecule, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".sdf") || strings.HasSuffix(lower, ".mol"):
		return chem.SDFRead(name)
	case strings.HasSuffix(lower, ".xyz"):
		mol, err := chem.XYZRead(name)
		if err != nil {
			return nil, err
		}
		err = chem.AssignBonds(mol.Coords, mol.Topology)
		if err != nil {
			return nil, err
		}
		return mol, nil
	}
	return nil, fmt.Errorf("unsupported file format: %s", name)
}

func runCompute(name string) error {
	mol, err := readMolecule(name)
	if err != nil {
		return err
	}
	frags := chemgraph.FromTopology(mol.Topology).Fragments()
	if len(frags) > 1 {
		fmt.Fprintf(os.Stderr, "Warning: %s contains %d disconnected fragments; charges only equalize within each fragment\n", name, len(frags))
	}
	charges, warnings, err := chem.PartialCharges(mol, computeSteps)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w.String())
	}
	symbols := make([]string, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		symbols[i] = at.Symbol
		fmt.Printf("%5d %-3s %9.4f\n", i, at.Symbol, charges[i])
	}
	masses, err := mol.Masses()
	if err == nil {
		total := 0.0
		for _, m := range masses {
			total += m
		}
		fmt.Printf("# %d atoms, molecular mass %.3f g/mol\n", mol.Len(), total)
	}
	if computePlot != "" {
		err = chemplot.ChargePlot(charges, symbols, name, computePlot)
		if err != nil {
			return err
		}
	}
	if computeCtf != "" {
		w, err := ctf.NewWriter(computeCtf, mol.Len(), map[string]string{"molecule": name, "steps": fmt.Sprintf("%d", computeSteps)})
		if err != nil {
			return err
		}
		defer w.Close()
		err = w.WNext(symbols, charges)
		if err != nil {
			return err
		}
	}
	if computeSdf != "" {
		err = chem.SDFWrite(computeSdf, mol.Coords, mol, charges)
		if err != nil {
			return err
		}
	}
	return nil
}
