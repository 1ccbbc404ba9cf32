// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "errors"

// Errors reported by the package. Every fallible arithmetic, parsing and
// conversion operation returns one of these sentinels, possibly wrapped
// with operation context; test with errors.Is. The encoding methods
// (UnmarshalText, GobDecode, Scan) may also report errors that wrap none
// of them.
//
// Allocation failure is not part of the set: as everywhere in Go, running
// out of memory aborts the process instead of being reported.
var (
	// ErrDivisionByZero is reported when a divisor has no nonzero digit.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument is reported for unparseable input, logarithms of
	// non-positive values, square roots of negative values, zero raised to
	// a negative power, a negative value raised to a non-integral power,
	// and integer conversion of NaN.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueOutOfRange is reported when a result's weight or display
	// scale would not fit the storage format, when Exp's argument is too
	// large, when a precision-constrained parse has too many significant
	// digits, and when an integer conversion overflows the target type.
	ErrValueOutOfRange = errors.New("value out of range")
)
