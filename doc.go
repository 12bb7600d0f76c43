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
Package chem is the main package of espgrid. It provides the atom and topology
structures that the rest of the library works on, element data, and the
assignment of van der Waals radii to atoms.

	**espgrid capabilities**

	Assigns van der Waals radii (Bondi or goChem sets) to the atoms of a molecule
	without modifying it.

	Builds face-centered-cubic grids of points in a shell around a molecule, between
	two multiples of the atomic van der Waals radii (package grid). These grids
	are the points on which the electrostatic potential (ESP) of a molecule is
	sampled to fit partial charges.

	Builds grids for many conformers concurrently.

	Writes grids as XYZ or JSON files, plain or compressed with gzip or zstd.

	Defines the settings for ESP calculations and builds Psi4 inputs for them
	(package esp). Running the QM program is left to the user.

	Plots projections of grids around their molecules (package gridplot).

Coordinates, both of atoms and of grid points, are stored in v3.Matrix objects
(package v3), where each row of the matrix is one point in space. All lengths
are in Angstrom.
*/
package chem
