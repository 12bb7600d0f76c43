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

package grid

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/pelletier/go-toml"
)

// FCC is the face-centered-cubic lattice, currently the only grid type.
const FCC = "fcc"

const (
	defSpacing       float64 = 0.5
	defInnerVdwScale float64 = 1.4
	defOuterVdwScale float64 = 2.0
)

// Settings contains the parameters that define a grid. All lengths are in A.
type Settings struct {
	Type          string  //the lattice, key "type". Only "fcc" is supported.
	Spacing       float64 //the lattice spacing, key "spacing".
	InnerVdwScale float64 //key "inner_vdw_scale". Points closer than this times the radius of any atom are discarded.
	OuterVdwScale float64 //key "outer_vdw_scale". Points farther than this times the radius of all atoms are discarded.
}

// DefaultSettings returns the default settings: an FCC lattice
// with 0.5 A spacing, and a shell between 1.4 and 2.0 times the
// van der Waals radii.
func DefaultSettings() *Settings {
	return &Settings{Type: FCC, Spacing: defSpacing, InnerVdwScale: defInnerVdwScale, OuterVdwScale: defOuterVdwScale}
}

// Validate returns a *ConfigError if the settings can't be used to build a grid.
// An inner scale larger than the outer one is allowed, as it just gives an empty grid,
// but a warning is logged.
func (S *Settings) Validate() error {
	if err := S.Check(); err != nil {
		return err
	}
	if S.InnerVdwScale > S.OuterVdwScale {
		log.Printf("grid: inner_vdw_scale (%.3f) is larger than outer_vdw_scale (%.3f), the grid will be empty", S.InnerVdwScale, S.OuterVdwScale)
	}
	return nil
}

// Check is like Validate, but doesn't log anything. Generate and Walk use it, so
// the warning is only given by whoever calls Validate.
func (S *Settings) Check() error {
	if S == nil {
		return newConfigError("settings", "Validate", "nil settings")
	}
	if S.Type != FCC {
		return newConfigError("type", "Validate", "unknown grid type %q, only %q is supported", S.Type, FCC)
	}
	if !positive(S.Spacing) {
		return newConfigError("spacing", "Validate", "spacing must be a positive number, got %v", S.Spacing)
	}
	if !positive(S.InnerVdwScale) {
		return newConfigError("inner_vdw_scale", "Validate", "inner scale must be a positive number, got %v", S.InnerVdwScale)
	}
	if !positive(S.OuterVdwScale) {
		return newConfigError("outer_vdw_scale", "Validate", "outer scale must be a positive number, got %v", S.OuterVdwScale)
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// String returns a one-line description of the settings.
func (S *Settings) String() string {
	return fmt.Sprintf("%s spacing=%.3f inner=%.3f outer=%.3f", S.Type, S.Spacing, S.InnerVdwScale, S.OuterVdwScale)
}

// LoadSettings reads grid settings from the TOML file in path. The keys can be at the top
// level of the file or in a [grid] table. Missing keys keep their default values.
// The settings are validated before being returned.
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

// ReadSettings is like LoadSettings but reads the TOML document from r.
func ReadSettings(r io.Reader) (*Settings, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, newConfigError("toml", "ReadSettings", "%s", err.Error())
	}
	if sub, ok := tree.Get("grid").(*toml.Tree); ok {
		tree = sub
	}
	S, err := SettingsFromTree(tree)
	if err != nil {
		return nil, errDecorate(err, "ReadSettings")
	}
	if err = S.Validate(); err != nil {
		return nil, errDecorate(err, "ReadSettings")
	}
	return S, nil
}

// SettingsFromTree builds settings from the keys in tree, using the default value for
// every key that is not present. The settings are not validated.
func SettingsFromTree(tree *toml.Tree) (*Settings, error) {
	S := DefaultSettings()
	var err error
	if tree == nil {
		return S, nil
	}
	if v, ok := tree.Get("type").(string); ok {
		S.Type = v
	} else if tree.Has("type") {
		return nil, newConfigError("type", "SettingsFromTree", "type must be a string")
	}
	if S.Spacing, err = TOMLFloat(tree, "spacing", S.Spacing); err != nil {
		return nil, err
	}
	if S.InnerVdwScale, err = TOMLFloat(tree, "inner_vdw_scale", S.InnerVdwScale); err != nil {
		return nil, err
	}
	if S.OuterVdwScale, err = TOMLFloat(tree, "outer_vdw_scale", S.OuterVdwScale); err != nil {
		return nil, err
	}
	return S, nil
}

// TOMLFloat returns the number under key in tree, or def if the key is not there.
// TOML integers are accepted.
func TOMLFloat(tree *toml.Tree, key string, def float64) (float64, error) {
	if !tree.Has(key) {
		return def, nil
	}
	switch v := tree.Get(key).(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, newConfigError(key, "TOMLFloat", "%s must be a number, got %T", key, v)
	}
}
