/*
 * fcc.go, part of espgrid.
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

// fccWalk calls fn for each index triple of an FCC lattice spanning
// [0, 2n] in each direction, in x-major order, then y, then z.
// Indexes are in units of half a lattice spacing.
func fccWalk(n int, fn func(x, y, z int)) {
	top := 2 * n
	for x := 0; x <= top; x++ {
		for y := 0; y <= top; y++ {
			for z := 0; z <= top; z++ {
				if isFCC(x, y, z) {
					fn(x, y, z)
				}
			}
		}
	}
}

// isFCC tells whether the triple belongs to one of the four cubic sublattices
// of the FCC lattice: (even,even,even), (odd,odd,even), (even,odd,odd) and
// (odd,even,odd). These are exactly the triples with an even number of
// odd indexes. Indexes must not be negative.
func isFCC(x, y, z int) bool {
	return (x%2+y%2+z%2)%2 == 0
}
