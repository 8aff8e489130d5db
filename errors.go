/*
 * errors.go, part of biostruct.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * biostruct is developed at Universidad de Tarapaca (UTA)
 *
 */

package chem

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice resulting from the current call. An empty string only returns the current value.
}

// CriticalError is an Error that can tell whether the operation can continue.
type CriticalError interface {
	Error
	Critical() bool
}

// CError is the error type of the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
	err      error //wrapped error, if any
}

// NewError returns a new error with the given message, decorated with caller.
func NewError(msg, caller string) *CError {
	e := &CError{msg: msg, critical: true}
	e.Decorate(caller)
	return e
}

func (err *CError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("%s: %v", err.msg, err.err)
	}
	return err.msg
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or can be ignored
func (err *CError) Critical() bool { return err.critical }

// Unwrap returns the wrapped error, if any.
func (err *CError) Unwrap() error { return err.err }

// errDecorate decorates err with the caller's name before returning it, if err is a chem.Error.
// Errors that are not chem.Error are wrapped in a *CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return &CError{msg: caller, deco: []string{caller}, critical: true, err: err}
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilModel        = PanicMsg("biostruct: nil model")
	ErrNilHierarchy    = PanicMsg("biostruct: model without atomic hierarchy")
	ErrHierarchyLength = PanicMsg("biostruct: hierarchy tables of different lengths")
)
