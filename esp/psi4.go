/*
 * psi4.go, part of espgrid.
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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	chem "github.com/rmera/espgrid"
	"github.com/rmera/espgrid/grid"
	v3 "github.com/rmera/espgrid/v3"
)

const psi4Template = `molecule mol {
  noreorient
  nocom
  {{.Charge}} {{.Multi}}
{{range .Atoms}}  {{.}}
{{end}}}

set basis {{.Basis}}
{{- if .DFT}}
set {
  dft_spherical_points {{.DFT.Spherical}}
  dft_radial_points {{.DFT.Radial}}
  dft_pruning_scheme {{.DFT.Pruning}}
}
{{- end}}
{{- with .PCM}}
set {
  pcm true
  pcm_scf_type total
}
pcm = {
  Units = Angstrom
  Medium {
    SolverType = {{.Solver}}
    Solvent = {{.Solvent}}
  }
  Cavity {
    RadiiSet = {{.RadiiModel}}
    Type = GePol
    Scaling = {{if .RadiiScaling}}True{{else}}False{{end}}
    Area = {{.CavityArea}}
    Mode = Implicit
  }
}
{{- end}}
{{- if .Minimize}}
optimize('{{.Method}}')
{{- end}}
E,wfn = prop('{{.Method}}', properties = [{{.Properties}}], return_wfn=True)`

var psi4Tmpl = template.Must(template.New("psi4").Parse(psi4Template))

type psi4DFT struct {
	Spherical int
	Radial    int
	Pruning   string
}

type psi4Input struct {
	Charge     int
	Multi      int
	Atoms      []string
	Basis      string
	Method     string
	DFT        *psi4DFT
	PCM        *PCMSettings
	Minimize   bool
	Properties string
}

// Psi4Input returns the Psi4 input to compute the ESP and/or the electric field of the molecule,
// with the coordinates in conformer, on the points in a grid.dat file. The input is built
// but nothing is run. For open shell molecules, hf is replaced by uhf.
func Psi4Input(atoms chem.AtomMultiCharger, conformer *v3.Matrix, settings *Settings, options ...*Options) (string, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := settings.check(); err != nil {
		return "", errDecorate(err, "Psi4Input")
	}
	if atoms == nil || conformer == nil || atoms.Len() != conformer.NVecs() {
		return "", &InputError{msg: "the molecule and the conformer have different numbers of atoms, or one of them is nil", deco: []string{"Psi4Input"}}
	}
	var props []string
	if o.ESP() {
		props = append(props, "'GRID_ESP'")
	}
	if o.Field() {
		props = append(props, "'GRID_FIELD'")
	}
	if len(props) == 0 {
		return "", newConfigError("properties", "Psi4Input", "neither the ESP nor the field were requested")
	}
	in := psi4Input{
		Charge:     atoms.Charge(),
		Multi:      atoms.Multi(),
		Basis:      settings.Basis,
		Method:     settings.Method,
		PCM:        settings.PCM,
		Minimize:   o.Minimize(),
		Properties: strings.Join(props, ", "),
	}
	if strings.ToLower(in.Method) == "hf" && in.Multi != 1 {
		in.Method = "uhf"
	}
	if sph, rad, prun, ok := settings.DFTGrid.Points(); ok {
		in.DFT = &psi4DFT{Spherical: sph, Radial: rad, Pruning: prun}
	}
	in.Atoms = make([]string, atoms.Len())
	for i := range in.Atoms {
		c := conformer.Vec(i)
		in.Atoms[i] = fmt.Sprintf("%s % .9f % .9f % .9f", atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	var b strings.Builder
	if err := psi4Tmpl.Execute(&b, in); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Psi4InputName and Psi4GridName are the names of the files written by WritePsi4Files.
const (
	Psi4InputName = "input.dat"
	Psi4GridName  = "grid.dat"
)

// WritePsi4Files writes, in dir, the Psi4 input for the molecule and the grid
// points Psi4 will read. dir is created if needed.
func WritePsi4Files(dir string, atoms chem.AtomMultiCharger, conformer *v3.Matrix, G *grid.Grid, settings *Settings, options ...*Options) error {
	input, err := Psi4Input(atoms, conformer, settings, options...)
	if err != nil {
		return errDecorate(err, "WritePsi4Files")
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err = os.WriteFile(filepath.Join(dir, Psi4InputName), []byte(input+"\n"), 0o644); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, Psi4GridName))
	if err != nil {
		return err
	}
	if err = grid.WriteDat(f, G); err != nil {
		f.Close()
		return errDecorate(err, "WritePsi4Files")
	}
	return f.Close()
}
