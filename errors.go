/*
 * errors.go, part of ocelot.
 *
 * Copyright 2019 The ocelot authors
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
 */

package ocelot

import (
	"errors"
	"fmt"
)

// Kinds of failure. Every error returned by this package matches at least one
// of them through errors.Is.
var (
	ErrInvalidSpecies          = errors.New("invalid species")
	ErrOutOfRange              = errors.New("atomic number out of range")
	ErrInvalidCoordinateType   = errors.New("invalid coordinate type")
	ErrInvalidCoordinateLength = errors.New("invalid coordinate length")
	ErrSingularLattice         = errors.New("singular lattice")
	ErrMalformedXYZ            = errors.New("malformed XYZ")
	ErrUnknownElement          = errors.New("unknown element")
	ErrNotImplemented          = errors.New("not implemented")
	ErrLatticeShape            = errors.New("lattice matrix must be 3x3")
	ErrLatticeConstant         = errors.New("lattice constant must be positive")
	ErrEnergyUnit              = errors.New("invalid energy unit")
	ErrEnergyCutoff            = errors.New("energy cutoff must be positive")
)

// Error is the error type of the ocelot package. Besides its message, it carries
// the kinds of the failure, and a "decoration": the list of functions the error went
// through, which can be extended with Decorate while the error is passed up.
type Error struct {
	msg   string
	kinds []error
	deco  []string
}

func newError(msg string, kinds ...error) *Error {
	return &Error{msg: msg, kinds: kinds}
}

// Error returns the message of the error.
func (err *Error) Error() string {
	return "ocelot: " + err.msg
}

// Unwrap exposes the kinds of the error to errors.Is and errors.As.
func (err *Error) Unwrap() []error {
	return err.kinds
}

// Decorate adds dec to the decoration slice of the error and returns
// the resulting slice. An empty dec just returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate adds caller to the decoration of err if err is an *Error, and
// returns err. Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

func notImplemented(what, caller string) error {
	err := newError(fmt.Sprintf("%s is not implemented", what), ErrNotImplemented)
	err.Decorate(caller)
	return err
}
