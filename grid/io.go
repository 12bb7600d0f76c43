/*
 * io.go, part of espgrid.
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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// WriteDat writes the grid as plain "x y z" lines, the format Psi4 reads for
// its grid.dat file.
func WriteDat(w io.Writer, G *Grid) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < G.Len(); i++ {
		p := G.Point(i)
		if _, err := fmt.Fprintf(bw, "%16.10f %16.10f %16.10f\n", p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteXYZ writes the grid as an XYZ file where each point is a dummy atom
// with symbol X, so it can be opened with molecular viewers.
func WriteXYZ(w io.Writer, G *Grid, comment string) error {
	bw := bufio.NewWriter(w)
	comment = strings.ReplaceAll(comment, "\n", " ")
	if _, err := fmt.Fprintf(bw, "%d\n%s\n", G.Len(), comment); err != nil {
		return err
	}
	for i := 0; i < G.Len(); i++ {
		p := G.Point(i)
		if _, err := fmt.Fprintf(bw, "X %12.6f %12.6f %12.6f\n", p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MarshalJSON encodes the grid as a list of [x, y, z] points.
func (G *Grid) MarshalJSON() ([]byte, error) {
	points := make([][3]float64, G.Len())
	for i := range points {
		points[i] = G.Point(i)
	}
	return json.Marshal(struct {
		Points [][3]float64 `json:"points"`
	}{points})
}

// UnmarshalJSON reads a grid written by MarshalJSON.
func (G *Grid) UnmarshalJSON(b []byte) error {
	var in struct {
		Points [][3]float64 `json:"points"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	G.data = make([]float64, 0, 3*len(in.Points))
	for _, p := range in.Points {
		G.data = append(G.data, p[0], p[1], p[2])
	}
	return nil
}

// WriteJSON writes the grid to w as JSON.
func WriteJSON(w io.Writer, G *Grid) error {
	return json.NewEncoder(w).Encode(G)
}

// WriteFile writes the grid to the file name. The format is chosen from the extension:
// .xyz for XYZ, .json for JSON, and .dat for plain coordinates. An additional
// .gz or .zst extension compresses the file with gzip or zstd, respectively.
// Unknown extensions are logged and written in the .dat format.
func WriteFile(name string, G *Grid) (err error) {
	format, compression := fileFormat(name)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	var w io.WriteCloser
	switch compression {
	case "gz":
		w = gzip.NewWriter(f)
	case "zst":
		w, err = zstd.NewWriter(f)
		if err != nil {
			return err
		}
	default:
		w = nopCloser{f}
	}
	switch format {
	case "xyz":
		err = WriteXYZ(w, G, fmt.Sprintf("ESP grid, %d points", G.Len()))
	case "json":
		err = WriteJSON(w, G)
	case "dat":
		err = WriteDat(w, G)
	default:
		log.Printf("grid: format %q not supported, %s will be written as plain coordinates", format, name)
		err = WriteDat(w, G)
	}
	if err != nil {
		w.Close()
		return errDecorate(err, "WriteFile: "+name)
	}
	return w.Close()
}

// fileFormat returns the format and compression extensions of name, in lower case.
// compression is empty if the file is not compressed.
func fileFormat(name string) (format, compression string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "gz" || ext == "zst" {
		compression = ext
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	}
	return ext, compression
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
