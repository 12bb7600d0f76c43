/*
 * atomicdata.go, part of espgrid.
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

package chem

// A map for assigning van der Waals radii to elements
// Values from 10.1021/j100785a001 and 10.1021/jp8111556
// metal radii from 10.1023/A:1011625728803
// Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

// Bondi's van der Waals radii, 10.1021/j100785a001
// B, Al and the alkaline earths missing from Bondi's table are
// taken from 10.1021/jp8111556.
var symbolBondi = map[string]float64{
	"H":  1.20,
	"He": 1.40,
	"Li": 1.82,
	"Be": 1.53,
	"B":  1.92,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"F":  1.47,
	"Ne": 1.54,
	"Na": 2.27,
	"Mg": 1.73,
	"Al": 1.84,
	"Si": 2.10,
	"P":  1.80,
	"S":  1.80,
	"Cl": 1.75,
	"Ar": 1.88,
	"K":  2.75,
	"Ca": 2.31,
	"Ni": 1.63,
	"Cu": 1.40,
	"Zn": 1.39,
	"Ga": 1.87,
	"As": 1.85,
	"Se": 1.90,
	"Br": 1.85,
	"Kr": 2.02,
	"Pd": 1.63,
	"Ag": 1.72,
	"Cd": 1.58,
	"In": 1.93,
	"Sn": 2.17,
	"Te": 2.06,
	"I":  1.98,
	"Xe": 2.16,
	"Pt": 1.72,
	"Au": 1.66,
	"Hg": 1.55,
	"Tl": 1.96,
	"Pb": 2.02,
	"U":  1.86,
}
