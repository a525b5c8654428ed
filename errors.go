/*
 * errors.go, part of gocharges.
 *
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
 *
 * goCharges is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

// Error is the interface for errors that all packages in this library implement. The Decorate
// method allows to add and retrieve info from the error, without changing it's type or wrapping
// it around something else.
type Error interface {
	Error() string
	//Decorate adds the given string to the decoration slice of strings of the error, and returns
	//the resulting slice. The decoration slice should contain the names of the functions in the
	//calling stack, plus, for each function, any relevant information, or nothing. If passed an
	//empty string, Decorate just returns the current slice without adding anything.
	Decorate(string) []string
}

// CError is the concrete error type of the chem package.
type CError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err *CError) Error() string {
	return err.msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err implements chem.Error, decorates it with the caller's
// name, and returns it. It panics if used with an error which is not a chem.Error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
