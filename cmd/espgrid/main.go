/*
 * main.go, part of espgrid.
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

// espgrid builds the grid of points around a molecule on which its electrostatic
// potential is to be sampled, and optionally the Psi4 input to compute the ESP.
//
// Usage:
//
//	espgrid [flags] molecule.json
//
// The molecule is a JSON file with the element symbols, the coordinates in A,
// the charge and the multiplicity:
//
//	{"symbols": ["O", "H", "H"], "coords": [[0, 0, 0.12], [0, 0.76, -0.47], [0, -0.76, -0.47]], "charge": 0, "multiplicity": 1}
//
// Settings are read from the TOML file given with -settings, if any, and the grid
// flags override them.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/espgrid"
	"github.com/rmera/espgrid/esp"
	"github.com/rmera/espgrid/grid"
	"github.com/rmera/espgrid/gridplot"
)

var logger = log.New(io.Discard, "espgrid: ", 0)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("espgrid: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("espgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	settingsFile := fs.String("settings", "", "TOML file with the ESP and grid settings")
	spacing := fs.Float64("spacing", 0, "grid spacing in A (overrides the settings)")
	inner := fs.Float64("inner", 0, "inner vdW radius scale (overrides the settings)")
	outer := fs.Float64("outer", 0, "outer vdW radius scale (overrides the settings)")
	radiiName := fs.String("radii", string(chem.BondiRadii), "van der Waals radius set: bondi or gochem")
	output := fs.String("o", "", "output grid file (.xyz, .json or .dat, optionally .gz or .zst). The XYZ grid goes to the standard output if not given")
	plotFile := fs.String("plot", "", "save a projection of the grid and the molecule to this image file")
	plane := fs.String("plane", "XY", "plane for the projection plot: XY, XZ or YZ")
	histFile := fs.String("hist", "", "save a histogram of the nearest-atom distances to this image file")
	psi4Dir := fs.String("psi4", "", "write the Psi4 input and grid files to this directory")
	verbose := fs.Bool("v", false, "print progress information to the standard error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: espgrid [flags] molecule.json\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one molecule file, got %d arguments", fs.NArg())
	}
	logger.SetOutput(io.Discard)
	if *verbose {
		logger.SetOutput(stderr)
	}

	settings := esp.DefaultSettings()
	var err error
	if *settingsFile != "" {
		if settings, err = esp.LoadSettings(*settingsFile); err != nil {
			return err
		}
		logger.Printf("settings read from %s", *settingsFile)
	}
	overridden := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spacing":
			settings.Grid.Spacing = *spacing
		case "inner":
			settings.Grid.InnerVdwScale = *inner
		case "outer":
			settings.Grid.OuterVdwScale = *outer
		default:
			return
		}
		overridden = true
	})
	//settings read from a file were already validated.
	if *settingsFile == "" || overridden {
		if err = settings.Validate(); err != nil {
			return err
		}
	}
	set, err := chem.ParseRadiusSet(*radiiName)
	if err != nil {
		return err
	}
	var projection gridplot.Plane
	if *plotFile != "" {
		if projection, err = gridplot.ParsePlane(strings.ToUpper(*plane)); err != nil {
			return err
		}
	}

	top, coords, err := readMolecule(fs.Arg(0))
	if err != nil {
		return err
	}
	logger.Printf("%d atoms read from %s", top.Len(), fs.Arg(0))
	radii, err := chem.VdwRadii(top, set)
	if err != nil {
		return err
	}
	G, err := grid.Generate(radii, coords, settings.Grid)
	if err != nil {
		return err
	}
	stats, err := G.Stats(coords)
	if err != nil {
		return err
	}
	logger.Printf("grid %s: %s", settings.Grid, stats)
	if *verbose {
		h, err := G.DistanceHistogram(coords, 8)
		if err != nil {
			return err
		}
		logger.Printf("nearest-atom distance histogram, %s", h)
	}

	name := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	if *output != "" {
		if err = grid.WriteFile(*output, G); err != nil {
			return err
		}
		logger.Printf("grid written to %s", *output)
	} else if err = grid.WriteXYZ(stdout, G, fmt.Sprintf("%s ESP grid, %s", name, settings.Grid)); err != nil {
		return err
	}
	if *plotFile != "" {
		if err = gridplot.SaveProjection(*plotFile, G, coords, projection, name+" grid"); err != nil {
			return err
		}
		logger.Printf("projection plot written to %s", *plotFile)
	}
	if *histFile != "" {
		if err = gridplot.SaveHistogram(*histFile, G, coords, 30, name+" nearest-atom distances"); err != nil {
			return err
		}
		logger.Printf("histogram written to %s", *histFile)
	}
	if *psi4Dir != "" {
		if err = esp.WritePsi4Files(*psi4Dir, top, coords, G, settings); err != nil {
			return err
		}
		logger.Printf("Psi4 input for %s written to %s", settings, *psi4Dir)
	}
	if *output != "" {
		fmt.Fprintf(stdout, "%s: %s\n", name, stats)
	}
	return nil
}
