// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package numeric implements arbitrary-precision decimal arithmetic with
the semantics of a SQL NUMERIC column.

A Numeric is an exact decimal value of essentially unbounded precision,
with deterministic rounding, a distinguished NaN value, and square root,
exponential, logarithm and power functions computed to a self-selected
number of significant digits.

Internally, the digits of a value are stored in a big-endian word slice
holding 4 decimal digits per word, so all arithmetic is performed
directly in base 10000 without conversion to or from binary. Alongside
the digits, a value carries a weight (the word exponent of the first
digit) and a display scale (the number of decimal digits shown after the
decimal point, which may exceed the digits physically stored).

The zero value for a Numeric is the number 0, ready to use:

	var x numeric.Numeric // x is 0

New values are obtained from decimal text or from Go numbers:

	x, err := numeric.Parse("12.345")
	y := numeric.NewFromInt64(42)

Values are immutable. Operations are methods of the first operand and
return the result along with an error:

	q, err := x.Div(y)

Every fallible arithmetic, parsing and conversion operation reports
exactly one of ErrDivisionByZero, ErrInvalidArgument or
ErrValueOutOfRange, possibly wrapped; test with errors.Is. Operations on NaN follow SQL NUMERIC: arithmetic propagates
NaN without error, and comparison treats NaN as equal to itself and
greater than every number, so that Cmp defines a total order suitable
for sorting and indexing.

Division selects a result scale carrying at least 16 significant digits.
The transcendental functions do the same, based on an estimate of the
result's decimal weight; internally they use a fast approximate division
whose last digits may be off by one unit, so their results can differ
from the mathematically exact value in the final digit.

Numeric implements fmt.Stringer, encoding.TextMarshaler and
TextUnmarshaler, gob encoding, and the database/sql driver.Valuer and
sql.Scanner interfaces.
*/
package numeric
