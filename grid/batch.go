/*
 * batch.go, part of espgrid.
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
	"context"
	"fmt"
	"runtime"

	v3 "github.com/rmera/espgrid/v3"
	"golang.org/x/sync/errgroup"
)

// Options contains the options for GenerateAll.
type Options struct {
	cpus int
}

// DefaultOptions returns Options that use all logical CPUs.
func DefaultOptions() *Options {
	return &Options{cpus: runtime.NumCPU()}
}

// Cpus returns the current value of the Cpus option (the number of gorutines to
// use on the concurrent calculation) and sets it, if
// a valid value is given
func (O *Options) Cpus(cpus ...int) int {
	ret := O.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		O.cpus = cpus[0]
	}
	return ret
}

// GenerateAll builds one grid per conformer, concurrently, using the same radii and settings
// for all of them. The grids are returned in the same order as the conformers.
// Each grid is built by a single gorutine, exactly as Generate would build it.
// The first error found stops the remaining work and is returned, decorated
// with the index of the offending conformer.
func GenerateAll(ctx context.Context, radii []float64, conformers []*v3.Matrix, settings *Settings, options ...*Options) ([]*Grid, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	if err := settings.Validate(); err != nil {
		return nil, errDecorate(err, "GenerateAll")
	}
	ret := make([]*Grid, len(conformers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Cpus())
	for i, c := range conformers {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			G, err := Generate(radii, c, settings)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("GenerateAll: conformer %d", i))
			}
			ret[i] = G
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
