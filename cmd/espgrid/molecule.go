/*
 * molecule.go, part of espgrid.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * espgrid is developed alongside goChem at the Universidad de Santiago
 * de Chile (USACH)
 *
 */

package main

import (
	"encoding/json"
	"fmt"
	"os"

	chem "github.com/rmera/espgrid"
	v3 "github.com/rmera/espgrid/v3"
)

// molecule is the JSON input of the program.
type molecule struct {
	Symbols      []string     `json:"symbols"`
	Coords       [][3]float64 `json:"coords"`
	Charge       int          `json:"charge"`
	Multiplicity int          `json:"multiplicity"`
}

// readMolecule reads a JSON molecule from the file name and returns its topology
// and coordinates.
func readMolecule(name string) (*chem.Topology, *v3.Matrix, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, err
	}
	var mol molecule
	if err = json.Unmarshal(b, &mol); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(mol.Symbols) == 0 {
		return nil, nil, fmt.Errorf("%s: no atoms in molecule", name)
	}
	if len(mol.Symbols) != len(mol.Coords) {
		return nil, nil, fmt.Errorf("%s: %d symbols but %d coordinates", name, len(mol.Symbols), len(mol.Coords))
	}
	top, err := chem.NewTopologyFromSymbols(mol.Symbols, mol.Charge, mol.Multiplicity)
	if err != nil {
		return nil, nil, err
	}
	data := make([]float64, 0, 3*len(mol.Coords))
	for _, c := range mol.Coords {
		data = append(data, c[:]...)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, nil, err
	}
	return top, coords, nil
}
