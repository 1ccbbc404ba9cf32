// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math"
)

// A Numeric is an exact decimal number of essentially unbounded
// precision, with the semantics of a SQL NUMERIC value:
//
//	value = sign · Σ digits[i] · nbase^(weight-i)
//
// where the digits are base-10000 words, weight is the word exponent of
// the first digit, and dscale is the number of decimal digits the value
// displays after the decimal point. A distinguished NaN value carries no
// digits and sorts above every number.
//
// Numeric values are immutable: every operation returns a fresh value
// and no operation retains or modifies an operand's digits. Distinct
// values may therefore be used from multiple goroutines; a single value
// needs no synchronization at all.
//
// The zero value for a Numeric is the number 0, ready to use.
type Numeric struct {
	weight int16
	dscale int16
	sign   uint8
	digits []word
}

// Commonly useful values. They are package variables for convenience
// only, and must not be modified.
var (
	Zero = Numeric{}
	One  = NewFromInt64(1)
	Two  = NewFromInt64(2)
	Ten  = NewFromInt64(10)
)

// NaN returns the not-a-number value.
func NaN() Numeric {
	return Numeric{sign: signNaN}
}

// IsNaN reports whether x is the NaN value.
func (x Numeric) IsNaN() bool {
	return x.sign == signNaN
}

// IsZero reports whether x is zero. NaN is not zero.
func (x Numeric) IsZero() bool {
	return x.sign != signNaN && len(x.digits) == 0
}

// unpack copies x into the working value v. x must not be NaN.
func (x Numeric) unpack(v *numvar) {
	if debugNumeric && x.sign == signNaN {
		panic("numeric: unpack of NaN")
	}
	v.weight = int(x.weight)
	v.dscale = int(x.dscale)
	v.sign = x.sign
	v.digits = append([]word(nil), x.digits...)
}

// pack converts the working value v into a stored Numeric, stripping it
// and enforcing the 16-bit weight and dscale storage limits.
func (v *numvar) pack() (Numeric, error) {
	v.strip()
	if v.weight < math.MinInt16 || v.weight > math.MaxInt16 ||
		v.dscale < 0 || v.dscale > math.MaxInt16 {
		return Numeric{}, fmt.Errorf("numeric: %w", ErrValueOutOfRange)
	}
	return Numeric{
		weight: int16(v.weight),
		dscale: int16(v.dscale),
		sign:   v.sign,
		digits: append([]word(nil), v.digits...),
	}, nil
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0 or x is NaN
// (NaN sorts above every number).
func (x Numeric) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.sign == signNeg:
		return -1
	default:
		return 1
	}
}

// Abs returns |x|. Abs of NaN is NaN.
func (x Numeric) Abs() Numeric {
	if x.sign == signNeg {
		x.sign = signPos
	}
	return x
}

// Neg returns -x. Neg of NaN and of zero is the operand itself.
func (x Numeric) Neg() Numeric {
	switch x.sign {
	case signPos:
		if len(x.digits) != 0 {
			x.sign = signNeg
		}
	case signNeg:
		x.sign = signPos
	}
	return x
}

// Scale returns x's display scale: the number of decimal digits after
// the decimal point that x claims to carry.
func (x Numeric) Scale() int {
	return int(x.dscale)
}

// Cmp compares x and y and returns -1, 0 or +1. The order is total: NaN
// compares equal to itself and greater than every number, which makes
// Cmp suitable for sorting and indexing.
func (x Numeric) Cmp(y Numeric) int {
	if x.IsNaN() {
		if y.IsNaN() {
			return 0
		}
		return 1
	}
	if y.IsNaN() {
		return -1
	}
	var a, b numvar
	x.unpack(&a)
	y.unpack(&b)
	return a.cmp(&b)
}

// Equal reports whether x and y compare equal. Two NaNs are equal.
func (x Numeric) Equal(y Numeric) bool { return x.Cmp(y) == 0 }

// Less reports whether x sorts before y.
func (x Numeric) Less(y Numeric) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x sorts before or equal to y.
func (x Numeric) LessOrEqual(y Numeric) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x sorts after y.
func (x Numeric) Greater(y Numeric) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x sorts after or equal to y.
func (x Numeric) GreaterOrEqual(y Numeric) bool { return x.Cmp(y) >= 0 }

// Min returns the smaller of x and y per Cmp; NaN loses.
func (x Numeric) Min(y Numeric) Numeric {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y per Cmp; NaN wins.
func (x Numeric) Max(y Numeric) Numeric {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Add returns x + y with the larger of the operands' display scales.
// The result is NaN if either operand is.
func (x Numeric) Add(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	res.add(&a, &b)
	return res.pack()
}

// Sub returns x - y with the larger of the operands' display scales.
// The result is NaN if either operand is.
func (x Numeric) Sub(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	res.sub(&a, &b)
	return res.pack()
}

// Mul returns x * y with the sum of the operands' display scales.
// The result is NaN if either operand is.
func (x Numeric) Mul(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	res.mul(&a, &b, a.dscale+b.dscale)
	return res.pack()
}

// Div returns x / y, rounded half away from zero at a result scale
// chosen to carry at least the guaranteed number of significant digits
// and no less than either operand's display scale. The result is NaN if
// either operand is; a zero divisor reports ErrDivisionByZero.
func (x Numeric) Div(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	if err := res.div(&a, &b, selectDivScale(&a, &b), true); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Div: %w", err)
	}
	return res.pack()
}

// DivTrunc returns x / y truncated toward zero to an integer. The result
// is NaN if either operand is; a zero divisor reports ErrDivisionByZero.
func (x Numeric) DivTrunc(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	if err := res.div(&a, &b, 0, false); err != nil {
		return Numeric{}, fmt.Errorf("numeric: DivTrunc: %w", err)
	}
	return res.pack()
}

// Mod returns x - DivTrunc(x, y)*y. The result is NaN if either operand
// is; a zero divisor reports ErrDivisionByZero.
func (x Numeric) Mod(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}
	var a, b, res numvar
	x.unpack(&a)
	y.unpack(&b)
	if err := res.mod(&a, &b); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Mod: %w", err)
	}
	return res.pack()
}

// Round returns x rounded to scale fractional digits, half away from
// zero. A negative scale rounds to the left of the decimal point; the
// result's display scale never goes below zero. Round of NaN is NaN.
func (x Numeric) Round(scale int) (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}
	scale = imax(scale, -maxResultScale)
	scale = imin(scale, maxResultScale)
	var v numvar
	x.unpack(&v)
	v.round(scale)
	if scale < 0 {
		v.dscale = 0
	}
	return v.pack()
}

// Trunc returns x truncated toward zero to scale fractional digits. A
// negative scale truncates to the left of the decimal point; the
// result's display scale never goes below zero. Trunc of NaN is NaN.
func (x Numeric) Trunc(scale int) (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}
	scale = imax(scale, -maxResultScale)
	scale = imin(scale, maxResultScale)
	var v numvar
	x.unpack(&v)
	v.trunc(scale)
	if scale < 0 {
		v.dscale = 0
	}
	return v.pack()
}

// Ceil returns the smallest integer not less than x. Ceil of NaN is NaN.
func (x Numeric) Ceil() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}
	var v, res numvar
	x.unpack(&v)
	res.ceil(&v)
	return res.pack()
}

// Floor returns the largest integer not greater than x. Floor of NaN is
// NaN.
func (x Numeric) Floor() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}
	var v, res numvar
	x.unpack(&v)
	res.floor(&v)
	return res.pack()
}
