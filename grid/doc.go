/*
 * doc.go, part of espgrid.
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

/*
Package grid builds the sets of points on which the electrostatic potential (ESP) of a
molecule is sampled.

The points are taken from a face-centered-cubic (FCC) lattice centered on the centroid of
the molecule, and only those in a shell around the molecule are kept: a point must not be
closer to any atom than InnerVdwScale times the atom's van der Waals radius, and it must be
within OuterVdwScale times the radius of at least one atom.

	radii, err := chem.VdwRadii(mol, chem.BondiRadii)
	...
	g, err := grid.Generate(radii, coords, grid.DefaultSettings())
	...
	err = grid.WriteFile("grid.dat", g)

An empty grid (for instance, one built with InnerVdwScale larger than OuterVdwScale) is a valid
result, not an error.
*/
package grid
