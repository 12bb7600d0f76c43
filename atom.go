/*
 * atom.go, part of espgrid.
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

import "fmt"

// Atom contains the information of an atom, except for its coordinates,
// which are kept in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int
	Symbol  string
	MolName string //the residue or molecule name
	MolID   int
	Chain   string
	Mass    float64
	Charge  float64
	Vdw     float64 //van der Waals radius in A. Only used with the AtomRadii set.
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := new(Atom)
	*ret = *A
	return ret
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time
// (i.e. everything except for coordinates).
type Topology struct {
	Atoms  []*Atom
	charge int
	multi  int
}

// NewTopology returns a topology with charge charge and multiplicity multi,
// containing the atoms in ats, if given. A multiplicity smaller than 1 is
// taken as 1.
func NewTopology(charge, multi int, ats ...[]*Atom) *Topology {
	top := new(Topology)
	if len(ats) > 0 && ats[0] != nil {
		top.Atoms = ats[0]
	} else {
		top.Atoms = make([]*Atom, 0, 10)
	}
	if multi < 1 {
		multi = 1
	}
	top.charge = charge
	top.multi = multi
	return top
}

// NewTopologyFromSymbols builds a topology with one atom per symbol. Atoms are
// named after their symbols and numbered from 1.
func NewTopologyFromSymbols(symbols []string, charge, multi int) (*Topology, error) {
	ats := make([]*Atom, 0, len(symbols))
	for i, s := range symbols {
		if s == "" {
			return nil, &CError{msg: fmt.Sprintf("Empty symbol for atom %d", i), deco: []string{"NewTopologyFromSymbols"}, critical: true}
		}
		ats = append(ats, &Atom{Name: s, ID: i + 1, Symbol: s})
	}
	return NewTopology(charge, multi, ats), nil
}

/*Topology methods*/

// Charge gets the total charge of the topology
func (T *Topology) Charge() int {
	return T.charge
}

// Multi returns the multiplicity of the topology
func (T *Topology) Multi() int {
	return T.multi
}

// SetCharge sets the total charge of the topology to i
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

// SetMulti sets the multiplicity of the topology to i
func (T *Topology) SetMulti(i int) {
	T.multi = i
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

// AppendAtom appends an atom at the end of the topology.
func (T *Topology) AppendAtom(at *Atom) {
	T.Atoms = append(T.Atoms, at)
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Copy returns a deep copy of the topology.
func (T *Topology) Copy() *Topology {
	ret := NewTopology(T.charge, T.multi, make([]*Atom, 0, T.Len()))
	for _, at := range T.Atoms {
		ret.AppendAtom(at.Copy())
	}
	return ret
}

// Symbols returns a slice with the element symbols of all atoms in the topology.
func Symbols(atoms Atomer) []string {
	ret := make([]string, atoms.Len())
	for i := range ret {
		ret[i] = atoms.Atom(i).Symbol
	}
	return ret
}
