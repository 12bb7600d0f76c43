/*
 * generator.go, part of espgrid.
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

package esp

import (
	"context"
	"fmt"
	"os"

	chem "github.com/rmera/espgrid"
	"github.com/rmera/espgrid/grid"
	v3 "github.com/rmera/espgrid/v3"
)

// Options contains the runtime options for an ESP calculation.
type Options struct {
	dir      string
	minimize bool
	esp      bool
	field    bool
	threads  int
	radii    chem.RadiusSet
}

// DefaultOptions returns options that compute both the ESP and the field, in the
// current directory, with one thread, on a grid built from Bondi radii.
func DefaultOptions() *Options {
	return &Options{esp: true, field: true, threads: 1, radii: chem.BondiRadii}
}

// Dir returns the directory where the calculation runs, and sets it if
// a value is given. An empty string means the current directory.
func (O *Options) Dir(dir ...string) string {
	ret := O.dir
	if len(dir) > 0 {
		O.dir = dir[0]
	}
	return ret
}

// Minimize returns whether the conformer is optimized, at the level of theory
// of the ESP, before computing it. It sets the option if a value is given.
func (O *Options) Minimize(minimize ...bool) bool {
	ret := O.minimize
	if len(minimize) > 0 {
		O.minimize = minimize[0]
	}
	return ret
}

// ESP returns whether the ESP is computed at each grid point, and sets it
// if a value is given.
func (O *Options) ESP(esp ...bool) bool {
	ret := O.esp
	if len(esp) > 0 {
		O.esp = esp[0]
	}
	return ret
}

// Field returns whether the electric field is computed at each grid point, and
// sets it if a value is given.
func (O *Options) Field(field ...bool) bool {
	ret := O.field
	if len(field) > 0 {
		O.field = field[0]
	}
	return ret
}

// Threads returns the number of threads the backend may use, and sets it
// if a valid value is given.
func (O *Options) Threads(threads ...int) int {
	ret := O.threads
	if len(threads) > 0 && threads[0] > 0 {
		O.threads = threads[0]
	}
	return ret
}

// Radii returns the radius set used to build the grid, and sets it if
// a value is given.
func (O *Options) Radii(set ...chem.RadiusSet) chem.RadiusSet {
	ret := O.radii
	if len(set) > 0 {
		O.radii = set[0]
	}
	return ret
}

// Result contains the output of an ESP calculation.
type Result struct {
	Conformer *v3.Matrix //the final conformer, which is the input one unless it was minimized.
	Grid      *grid.Grid
	ESP       []float64  //Hartree/e at each grid point, nil if not requested.
	Field     *v3.Matrix //Hartree/(e*a0) at each grid point, nil if not requested.
}

// Generator is implemented by anything able to compute the ESP of a molecule
// on a given grid, normally by running a QM program.
type Generator interface {
	//Compute returns the conformer, ESP and electric field for the molecule
	//on the points of G. The Grid field of the result is ignored.
	Compute(ctx context.Context, atoms chem.AtomMultiCharger, conformer *v3.Matrix, G *grid.Grid, settings *Settings, o *Options) (*Result, error)
}

// Generate builds the grid for the conformer of atoms and computes the ESP on it using gen.
// If radii is nil, the radii are taken from the set in the options.
// The directory in the options is created, if needed, before calling gen.
// The results are checked to have one value per grid point.
func Generate(ctx context.Context, gen Generator, atoms chem.AtomMultiCharger, conformer *v3.Matrix, radii []float64, settings *Settings, options ...*Options) (*Result, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := settings.Validate(); err != nil {
		return nil, errDecorate(err, "Generate")
	}
	if atoms == nil || conformer == nil || atoms.Len() != conformer.NVecs() {
		return nil, &InputError{msg: "the molecule and the conformer have different numbers of atoms, or one of them is nil", deco: []string{"Generate"}}
	}
	var err error
	if radii == nil {
		if radii, err = chem.VdwRadii(atoms, o.Radii()); err != nil {
			return nil, errDecorate(err, "Generate")
		}
	}
	if d := o.Dir(); d != "" {
		if err = os.MkdirAll(d, 0o755); err != nil {
			return nil, err
		}
	}
	G, err := grid.Generate(radii, conformer, settings.Grid)
	if err != nil {
		return nil, errDecorate(err, "Generate")
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	res, err := gen.Compute(ctx, atoms, conformer, G, settings, o)
	if err != nil {
		return nil, &GeneratorError{msg: "backend failed", deco: []string{"Generate"}, err: err}
	}
	if res == nil {
		return nil, &GeneratorError{msg: "backend returned no result", deco: []string{"Generate"}}
	}
	res.Grid = G
	if res.Conformer == nil {
		res.Conformer = conformer
	}
	if err = checkResult(res, conformer.NVecs(), o); err != nil {
		return nil, errDecorate(err, "Generate")
	}
	return res, nil
}

func checkResult(res *Result, natoms int, o *Options) error {
	n := res.Grid.Len()
	if res.Conformer.NVecs() != natoms {
		return &GeneratorError{msg: fmt.Sprintf("backend returned %d atoms, expected %d", res.Conformer.NVecs(), natoms), deco: []string{"checkResult"}}
	}
	if o.ESP() && len(res.ESP) != n {
		return &GeneratorError{msg: fmt.Sprintf("backend returned %d ESP values for %d grid points", len(res.ESP), n), deco: []string{"checkResult"}}
	}
	if o.Field() && n > 0 && (res.Field == nil || res.Field.NVecs() != n) {
		return &GeneratorError{msg: fmt.Sprintf("backend returned no field or a wrong number of field vectors for %d grid points", n), deco: []string{"checkResult"}}
	}
	return nil
}
