/*
 * main_test.go, part of espgrid.
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
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	chem "github.com/rmera/espgrid"
	"github.com/rmera/espgrid/esp"
	"github.com/rmera/espgrid/grid"
)

func waterGrid(Te *testing.T, s *grid.Settings) *grid.Grid {
	top, coords, err := readMolecule("testdata/water.json")
	require.NoError(Te, err)
	radii, err := chem.VdwRadii(top, chem.BondiRadii)
	require.NoError(Te, err)
	G, err := grid.Generate(radii, coords, s)
	require.NoError(Te, err)
	return G
}

func TestReadMolecule(Te *testing.T) {
	top, coords, err := readMolecule("testdata/water.json")
	require.NoError(Te, err)
	require.Equal(Te, []string{"O", "H", "H"}, chem.Symbols(top))
	require.Equal(Te, 3, coords.NVecs())
	require.Equal(Te, [3]float64{0, 0.7572, -0.4692}, coords.Vec(1))
	require.Equal(Te, 1, top.Multi())

	_, _, err = readMolecule("testdata/bad.json")
	require.ErrorContains(Te, err, "2 symbols but 1 coordinates")
	_, _, err = readMolecule("testdata/missing.json")
	require.Error(Te, err)
}

func TestRunStdout(Te *testing.T) {
	var out, errout bytes.Buffer
	require.NoError(Te, run([]string{"testdata/water.json"}, &out, &errout))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	n, err := strconv.Atoi(lines[0])
	require.NoError(Te, err)
	require.Equal(Te, waterGrid(Te, grid.DefaultSettings()).Len(), n)
	require.Len(Te, lines, n+2)
	require.True(Te, strings.HasPrefix(lines[1], "water ESP grid"))
	require.Empty(Te, errout.String())
}

func TestRunFiles(Te *testing.T) {
	dir := Te.TempDir()
	gridFile := filepath.Join(dir, "water.json.gz")
	plotFile := filepath.Join(dir, "water.png")
	histFile := filepath.Join(dir, "hist.png")
	psi4Dir := filepath.Join(dir, "psi4")
	var out, errout bytes.Buffer
	err := run([]string{
		"-settings", "testdata/settings.toml",
		"-outer", "2.0",
		"-o", gridFile,
		"-plot", plotFile, "-plane", "yz",
		"-hist", histFile,
		"-psi4", psi4Dir,
		"-v",
		"testdata/water.json",
	}, &out, &errout)
	require.NoError(Te, err)
	for _, f := range []string{gridFile, plotFile, histFile, filepath.Join(psi4Dir, esp.Psi4InputName), filepath.Join(psi4Dir, esp.Psi4GridName)} {
		require.FileExists(Te, f)
	}
	G := waterGrid(Te, &grid.Settings{Type: grid.FCC, Spacing: 0.8, InnerVdwScale: 1.2, OuterVdwScale: 2.0})
	require.True(Te, strings.HasPrefix(out.String(), "water: "+strconv.Itoa(G.Len())+" points"))
	require.Contains(Te, errout.String(), "settings read from testdata/settings.toml")
	require.Contains(Te, errout.String(), "nearest-atom distance histogram, Normalized: false, TotalData: "+strconv.Itoa(G.Len()))

	in, err := os.ReadFile(filepath.Join(psi4Dir, esp.Psi4InputName))
	require.NoError(Te, err)
	require.Contains(Te, string(in), "set basis aug-cc-pvdz")
	require.Contains(Te, string(in), "prop('mp2'")
}

func TestRunErrors(Te *testing.T) {
	var out, errout bytes.Buffer
	require.Error(Te, run(nil, &out, &errout))
	require.Error(Te, run([]string{"-spacing", "-1", "testdata/water.json"}, &out, &errout))
	require.Error(Te, run([]string{"-radii", "pauling", "testdata/water.json"}, &out, &errout))
	require.Error(Te, run([]string{"-plot", "x.png", "-plane", "ZX", "testdata/water.json"}, &out, &errout))
	require.Error(Te, run([]string{"testdata/bad.json"}, &out, &errout))
}

func TestRunInvertedShellWarnsOnce(Te *testing.T) {
	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)
	var out, errout bytes.Buffer
	psi4Dir := filepath.Join(Te.TempDir(), "psi4")
	require.NoError(Te, run([]string{"-inner", "2.2", "-outer", "2.0", "-psi4", psi4Dir, "testdata/water.json"}, &out, &errout))
	require.True(Te, strings.HasPrefix(out.String(), "0\n"))
	require.Equal(Te, 1, strings.Count(logged.String(), "is larger than outer_vdw_scale"))
}
