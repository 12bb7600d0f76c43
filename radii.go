/*
 * radii.go, part of espgrid.
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

package chem

import (
	"fmt"
	"strings"
)

// RadiusSet names a set of van der Waals radii.
type RadiusSet string

const (
	BondiRadii  RadiusSet = "bondi"  //Bondi, 1964, with a few additions. The default.
	GoChemRadii RadiusSet = "gochem" //the goChem set, with metal radii.
	AtomRadii   RadiusSet = "atom"   //whatever is in the Vdw field of each atom.
)

// ParseRadiusSet returns the RadiusSet named by s (case-insensitive).
func ParseRadiusSet(s string) (RadiusSet, error) {
	switch r := RadiusSet(strings.ToLower(strings.TrimSpace(s))); r {
	case BondiRadii, GoChemRadii, AtomRadii:
		return r, nil
	case "":
		return BondiRadii, nil
	}
	return "", &CError{msg: fmt.Sprintf("Unknown radius set %q", s), deco: []string{"ParseRadiusSet"}, critical: true}
}

// VdwRadius returns the van der Waals radius for the element symbol in the set.
// It returns an error if the set doesn't have the element.
func VdwRadius(symbol string, set RadiusSet) (float64, error) {
	var table map[string]float64
	switch set {
	case BondiRadii, "":
		table = symbolBondi
	case GoChemRadii:
		table = symbolVdwrad
	default:
		return 0, &CError{msg: fmt.Sprintf("Radius set %q has no element table", set), deco: []string{"VdwRadius"}, critical: true}
	}
	r, ok := table[symbol]
	if !ok {
		return 0, &CError{msg: fmt.Sprintf("No %s radius for element %q", set, symbol), deco: []string{"VdwRadius"}, critical: true}
	}
	return r, nil
}

// VdwRadii returns a new slice with the van der Waals radius of each atom in atoms,
// in the same order, taken from the set given. atoms is not modified.
// With the AtomRadii set, the Vdw field of each atom is used, and it is an error for it
// to be negative.
func VdwRadii(atoms Atomer, set RadiusSet) ([]float64, error) {
	if atoms == nil {
		return nil, &CError{msg: "Nil topology", deco: []string{"VdwRadii"}, critical: true}
	}
	radii := make([]float64, atoms.Len())
	for i := range radii {
		at := atoms.Atom(i)
		if set == AtomRadii {
			if at.Vdw < 0 {
				return nil, &CError{msg: fmt.Sprintf("Negative radius %.3f for atom %d", at.Vdw, i), deco: []string{"VdwRadii"}, critical: true}
			}
			radii[i] = at.Vdw
			continue
		}
		r, err := VdwRadius(at.Symbol, set)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("VdwRadii: atom %d", i))
		}
		radii[i] = r
	}
	return radii, nil
}
