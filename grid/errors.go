/*
 * errors.go, part of espgrid.
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

import "fmt"

// ConfigError is returned when the grid settings are not valid.
type ConfigError struct {
	Field string
	msg   string
	deco  []string
}

func newConfigError(field, caller, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("grid: invalid settings (%s): %s", err.Field, err.msg)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *ConfigError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical is always true for configuration errors.
func (err *ConfigError) Critical() bool { return true }

// ShapeError is returned when the radii and the coordinates given don't describe
// the same set of atoms.
type ShapeError struct {
	Radii int //number of radii given
	Atoms int //number of coordinates given
	msg   string
	deco  []string
}

func (err *ShapeError) Error() string {
	if err.msg != "" {
		return "grid: " + err.msg
	}
	return fmt.Sprintf("grid: %d radii given for %d atoms", err.Radii, err.Atoms)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *ShapeError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical is always true for shape errors.
func (err *ShapeError) Critical() bool { return true }

type decorator interface {
	Decorate(string) []string
}

// errDecorate adds the caller's name to err, if err supports it, and
// returns err.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(decorator); ok {
		d.Decorate(caller)
	}
	return err
}
