/*
 * settings.go, part of espgrid.
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
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/rmera/espgrid/grid"
)

// DFTGrid selects the integration grid used by Psi4 in DFT calculations.
type DFTGrid string

const (
	DefaultDFTGrid DFTGrid = "default" //Psi4 picks the grid.
	MediumDFTGrid  DFTGrid = "medium"  //434 spherical, 85 radial points, robust pruning.
	FineDFTGrid    DFTGrid = "fine"    //590 spherical, 99 radial points, robust pruning.
)

// Points returns the number of spherical and radial points, and the pruning scheme,
// for the grid. ok is false for the default grid, where nothing is set explicitly.
func (D DFTGrid) Points() (spherical, radial int, pruning string, ok bool) {
	switch D {
	case MediumDFTGrid:
		return 434, 85, "robust", true
	case FineDFTGrid:
		return 590, 99, "robust", true
	}
	return 0, 0, "", false
}

// PCMSettings describes the polarizable continuum model to include in an ESP calculation.
type PCMSettings struct {
	Solver       string  //key "solver": CPCM or IEFPCM
	Solvent      string  //key "solvent": only Water
	RadiiModel   string  //key "radii_model": Bondi, UFF or Allinger
	RadiiScaling bool    //key "radii_scaling": scale the cavity radii by 1.2
	CavityArea   float64 //key "cavity_area": average area of the surface partition
}

// DefaultPCMSettings returns CPCM water with Bondi radii, scaled, and a 0.3 cavity area.
func DefaultPCMSettings() *PCMSettings {
	return &PCMSettings{Solver: "CPCM", Solvent: "Water", RadiiModel: "Bondi", RadiiScaling: true, CavityArea: 0.3}
}

var (
	pcmSolvers    = []string{"CPCM", "IEFPCM"}
	pcmSolvents   = []string{"Water"}
	pcmRadiiModel = []string{"Bondi", "UFF", "Allinger"}
)

func isIn(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate returns a *ConfigError if P is not a valid PCM setup.
func (P *PCMSettings) Validate() error {
	if !isIn(P.Solver, pcmSolvers) {
		return newConfigError("pcm.solver", "Validate", "unknown solver %q, expected one of %v", P.Solver, pcmSolvers)
	}
	if !isIn(P.Solvent, pcmSolvents) {
		return newConfigError("pcm.solvent", "Validate", "unknown solvent %q, expected one of %v", P.Solvent, pcmSolvents)
	}
	if !isIn(P.RadiiModel, pcmRadiiModel) {
		return newConfigError("pcm.radii_model", "Validate", "unknown radii model %q, expected one of %v", P.RadiiModel, pcmRadiiModel)
	}
	if !(P.CavityArea > 0) || math.IsInf(P.CavityArea, 1) {
		return newConfigError("pcm.cavity_area", "Validate", "cavity area must be a positive number, got %v", P.CavityArea)
	}
	return nil
}

// Settings contains what is needed to compute the ESP of a molecule on a grid.
type Settings struct {
	Basis   string         //key "basis"
	Method  string         //key "method"
	Grid    *grid.Settings //[grid] table
	PCM     *PCMSettings   //[pcm] table. nil means gas phase.
	DFTGrid DFTGrid        //key "dft_grid"
}

// DefaultSettings returns HF/6-31G* in gas phase, with the default grid.
func DefaultSettings() *Settings {
	return &Settings{Basis: "6-31g*", Method: "hf", Grid: grid.DefaultSettings(), DFTGrid: DefaultDFTGrid}
}

// Validate returns an error if S can't be used. Problems with the grid settings are
// returned as *grid.ConfigError, everything else as *ConfigError. Like grid.Settings.Validate,
// it logs a warning if the grid will be empty.
func (S *Settings) Validate() error {
	return S.validate(true)
}

// check is Validate without the warning.
func (S *Settings) check() error {
	return S.validate(false)
}

func (S *Settings) validate(warn bool) error {
	if S == nil {
		return newConfigError("settings", "Validate", "nil settings")
	}
	if S.Basis == "" {
		return newConfigError("basis", "Validate", "no basis set given")
	}
	if S.Method == "" {
		return newConfigError("method", "Validate", "no method given")
	}
	if S.Grid == nil {
		return newConfigError("grid", "Validate", "grid settings are required")
	}
	gridCheck := S.Grid.Check
	if warn {
		gridCheck = S.Grid.Validate
	}
	if err := gridCheck(); err != nil {
		return errDecorate(err, "esp.Validate")
	}
	if S.PCM != nil {
		if err := S.PCM.Validate(); err != nil {
			return err
		}
	}
	switch S.DFTGrid {
	case DefaultDFTGrid, MediumDFTGrid, FineDFTGrid:
	case "":
		//an unset grid means the default one.
	default:
		return newConfigError("dft_grid", "Validate", "unknown DFT grid %q", S.DFTGrid)
	}
	return nil
}

// LoadSettings reads ESP settings from a TOML file. basis, method and dft_grid
// are top-level keys, the grid settings go in a [grid] table and, if present,
// a [pcm] table turns on the continuum model. Missing keys take their
// default values. The settings are validated before being returned.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	S, err := ReadSettings(f)
	if err != nil {
		return nil, errDecorate(err, "LoadSettings: "+path)
	}
	return S, nil
}

// ReadSettings is like LoadSettings, but reads the TOML document from r.
func ReadSettings(r io.Reader) (*Settings, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, newConfigError("toml", "ReadSettings", "%s", err.Error())
	}
	S := DefaultSettings()
	for key, dst := range map[string]*string{"basis": &S.Basis, "method": &S.Method} {
		if !tree.Has(key) {
			continue
		}
		v, ok := tree.Get(key).(string)
		if !ok {
			return nil, newConfigError(key, "ReadSettings", "%s must be a string", key)
		}
		*dst = v
	}
	if tree.Has("dft_grid") {
		v, ok := tree.Get("dft_grid").(string)
		if !ok {
			return nil, newConfigError("dft_grid", "ReadSettings", "dft_grid must be a string")
		}
		S.DFTGrid = DFTGrid(v)
	}
	if sub, ok := tree.Get("grid").(*toml.Tree); ok {
		if S.Grid, err = grid.SettingsFromTree(sub); err != nil {
			return nil, errDecorate(err, "ReadSettings")
		}
	}
	if sub, ok := tree.Get("pcm").(*toml.Tree); ok {
		if S.PCM, err = pcmFromTree(sub); err != nil {
			return nil, errDecorate(err, "ReadSettings")
		}
	}
	if err = S.Validate(); err != nil {
		return nil, errDecorate(err, "ReadSettings")
	}
	return S, nil
}

func pcmFromTree(tree *toml.Tree) (*PCMSettings, error) {
	P := DefaultPCMSettings()
	for key, dst := range map[string]*string{"solver": &P.Solver, "solvent": &P.Solvent, "radii_model": &P.RadiiModel} {
		if !tree.Has(key) {
			continue
		}
		v, ok := tree.Get(key).(string)
		if !ok {
			return nil, newConfigError("pcm."+key, "pcmFromTree", "%s must be a string", key)
		}
		*dst = v
	}
	if tree.Has("radii_scaling") {
		v, ok := tree.Get("radii_scaling").(bool)
		if !ok {
			return nil, newConfigError("pcm.radii_scaling", "pcmFromTree", "radii_scaling must be a boolean")
		}
		P.RadiiScaling = v
	}
	var err error
	if P.CavityArea, err = grid.TOMLFloat(tree, "cavity_area", P.CavityArea); err != nil {
		return nil, errDecorate(err, "pcmFromTree")
	}
	return P, nil
}

// String returns a short description of the level of theory.
func (S *Settings) String() string {
	s := fmt.Sprintf("%s/%s", S.Method, S.Basis)
	if S.PCM != nil {
		s += fmt.Sprintf(" %s(%s)", S.PCM.Solver, S.PCM.Solvent)
	}
	if S.Grid != nil {
		s += " grid: " + S.Grid.String()
	}
	return s
}
