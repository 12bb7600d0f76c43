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
Package esp contains the settings for electrostatic potential (ESP) calculations, the interface
that programs computing the ESP of a molecule on a grid must implement, and a builder for the
input files of one such program, Psi4.

The package doesn't run any QM program. A Generator implementation is expected to do that,
and Generate takes care of validating the settings, assigning radii to the atoms and building
the grid before handing everything to it.
*/
package esp
