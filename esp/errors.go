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

package esp

import "fmt"

// ConfigError is returned when ESP settings are not valid. Errors in the grid settings
// are returned as *grid.ConfigError.
type ConfigError struct {
	Field string
	msg   string
	deco  []string
}

func newConfigError(field, caller, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("esp: invalid settings (%s): %s", err.Field, err.msg)
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

// GeneratorError is returned when a Generator fails or returns inconsistent results.
type GeneratorError struct {
	msg  string
	deco []string
	err  error
}

func (err *GeneratorError) Error() string {
	if err.err != nil {
		return "esp: " + err.msg + ": " + err.err.Error()
	}
	return "esp: " + err.msg
}

// Unwrap returns the error returned by the Generator, if any.
func (err *GeneratorError) Unwrap() error { return err.err }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *GeneratorError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical is always true.
func (err *GeneratorError) Critical() bool { return true }

type decorator interface {
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(decorator); ok {
		d.Decorate(caller)
	}
	return err
}

// InputError is returned when the molecule and the coordinates given don't match.
type InputError struct {
	msg  string
	deco []string
}

func (err *InputError) Error() string { return "esp: " + err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *InputError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical is always true.
func (err *InputError) Critical() bool { return true }
