// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Numeric and decimal strings,
// integers and floats. Float bridging goes through strconv: a float is
// formatted to its type's decimal precision and re-parsed, so no binary
// arithmetic is involved.

package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// number of significant decimal digits preserved when converting from
// binary floating point, per float64 and float32 precision
const (
	float64Digits = 15
	float32Digits = 6
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// setString sets z from the decimal text
//
//	[+-]? (digits [. digits?] | . digits) ([eE][+-]?digits)?
//
// surrounded by optional whitespace. The NaN literal is the caller's
// business. The decimal digits are collected first, tracking the decimal
// weight of the most significant digit and the count of fractional
// digits, and then regrouped into words aligned on the decimal point.
func (z *numvar) setString(s string) error {
	orig := s

	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}

	sign := signPos
	if len(s) > 0 {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			sign = signNeg
			s = s[1:]
		}
	}

	haveDP := false
	if len(s) > 0 && s[0] == '.' {
		haveDP = true
		s = s[1:]
	}

	if len(s) == 0 || !isDigit(s[0]) {
		return fmt.Errorf("parsing %q: %w", orig, ErrInvalidArgument)
	}

	// Collect decimal digits, with decDigits zero padding on both sides
	// for word alignment later.
	decdigits := make([]byte, decDigits, len(s)+decDigits*2)
	dweight := -1 // decimal weight of the most significant digit
	dscale := 0   // fractional digits

digits:
	for len(s) > 0 {
		c := s[0]
		switch {
		case isDigit(c):
			decdigits = append(decdigits, c-'0')
			if haveDP {
				dscale++
			} else {
				dweight++
			}
		case c == '.':
			if haveDP {
				return fmt.Errorf("parsing %q: %w", orig, ErrInvalidArgument)
			}
			haveDP = true
		default:
			break digits
		}
		s = s[1:]
	}

	ddigits := len(decdigits) - decDigits
	for i := 0; i < decDigits-1; i++ {
		decdigits = append(decdigits, 0)
	}

	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		eneg := false
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			eneg = s[0] == '-'
			s = s[1:]
		}
		if len(s) == 0 || !isDigit(s[0]) {
			return fmt.Errorf("parsing %q: %w", orig, ErrInvalidArgument)
		}
		exp := 0
		for len(s) > 0 && isDigit(s[0]) {
			exp = exp*10 + int(s[0]-'0')
			if exp > MaxPrecision {
				return fmt.Errorf("parsing %q: exponent: %w", orig, ErrValueOutOfRange)
			}
			s = s[1:]
		}
		if eneg {
			exp = -exp
		}
		dweight += exp
		dscale -= exp
		if dscale < 0 {
			dscale = 0
		}
	}

	// nothing but whitespace may follow
	for len(s) > 0 {
		if !isSpace(s[0]) {
			return fmt.Errorf("parsing %q: %w", orig, ErrInvalidArgument)
		}
		s = s[1:]
	}

	// Regroup the decimal digits into base-nbase words. offset is the
	// number of decimal zeroes to insert before the first digit so that
	// the first word ends at the decimal-point alignment.
	var weight int
	if dweight >= 0 {
		weight = (dweight+1+decDigits-1)/decDigits - 1
	} else {
		weight = -((-dweight-1)/decDigits + 1)
	}
	offset := (weight+1)*decDigits - (dweight + 1)
	ndigits := (ddigits + offset + decDigits - 1) / decDigits

	z.alloc(ndigits)
	z.sign = sign
	z.weight = weight
	z.dscale = dscale

	i := decDigits - offset
	for d := 0; d < ndigits; d++ {
		z.digits[d] = word(((int(decdigits[i])*10+int(decdigits[i+1]))*10+
			int(decdigits[i+2]))*10 + int(decdigits[i+3]))
		i += decDigits
	}

	z.strip()
	return nil
}

// applyPrecision rounds z to scale fractional digits and verifies that
// its significant digits fit within precision - scale digits before the
// decimal point.
func (z *numvar) applyPrecision(precision, scale int) error {
	maxdigits := precision - scale

	z.round(scale)

	// The weight could be inflated by leading zeroes inside the first
	// word; count them out before deciding, and recognize a true zero.
	ddigits := (z.weight + 1) * decDigits
	if ddigits > maxdigits {
		for _, dig := range z.digits {
			if dig != 0 {
				ddigits -= decDigits
				switch {
				case dig < 10:
					ddigits += 1
				case dig < 100:
					ddigits += 2
				case dig < 1000:
					ddigits += 3
				default:
					ddigits += 4
				}
				if ddigits > maxdigits {
					return fmt.Errorf("value with %d digits before the decimal point cannot hold numeric(%d,%d): %w",
						ddigits, precision, scale, ErrValueOutOfRange)
				}
				break
			}
			ddigits -= decDigits
		}
	}
	return nil
}

// setInt64 sets z to the integer v, by repeated division by the base.
func (z *numvar) setInt64(v int64) {
	z.sign = signPos
	uval := uint64(v)
	if v < 0 {
		z.sign = signNeg
		uval = -uint64(v)
	}
	z.dscale = 0
	if v == 0 {
		z.digits = nil
		z.weight = 0
		return
	}

	// an int64 needs at most 19 decimal digits
	var buf [20 / decDigits]word
	i := len(buf)
	for uval != 0 {
		i--
		next := uval / nbase
		buf[i] = word(uval - next*nbase)
		uval = next
	}
	z.digits = append([]word(nil), buf[i:]...)
	z.weight = len(buf) - i - 1
}

// toInt64 rounds z to an integer and accumulates it into an int64,
// reporting false on overflow. z is scribbled on.
func (z *numvar) toInt64() (int64, bool) {
	z.round(0)
	z.strip()

	if len(z.digits) == 0 {
		return 0, true
	}

	// The stripped form suppresses trailing zero words, so the loop runs
	// over weight+1 positions, not just the stored words.
	if debugNumeric && (z.weight < 0 || len(z.digits) > z.weight+1) {
		panic("numeric: toInt64 of non-integer")
	}

	neg := z.sign == signNeg
	val := int64(z.digits[0])
	for i := 1; i <= z.weight; i++ {
		oldval := val
		val *= nbase
		if i < len(z.digits) {
			val += int64(z.digits[i])
		}

		// The overflow check is a bit tricky because we want to accept
		// math.MinInt64, which overflows the positive accumulator. It is
		// the only nonzero value for which -val == val.
		if val/nbase != oldval {
			if !neg || -val != val || val == 0 || oldval < 0 {
				return 0, false
			}
		}
	}

	if neg {
		val = -val
	}
	return val, true
}

// toFloat64 approximates z as a float64, saturating to infinity on
// overflow. Used for scale estimation only.
func (z *numvar) toFloat64() float64 {
	var tmp numvar
	tmp.set(z)
	f, err := strconv.ParseFloat(tmp.str(tmp.dscale), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		if debugNumeric {
			panic("numeric: toFloat64: unparseable own output")
		}
		return 0
	}
	return f
}

// Parse converts decimal text into a Numeric. The accepted syntax is
//
//	{ws} [+-] (digits [. [digits]] | . digits) [[eE] [+-] digits] {ws}
//
// or the literal "NaN" in any case. Anything else reports
// ErrInvalidArgument.
func Parse(s string) (Numeric, error) {
	if strings.EqualFold(strings.TrimSpace(s), "NaN") {
		return NaN(), nil
	}
	var v numvar
	if err := v.setString(s); err != nil {
		return Numeric{}, fmt.Errorf("numeric: %w", err)
	}
	return v.pack()
}

// ParseExact is like Parse, but constrains the result like a SQL
// NUMERIC(precision, scale) column: the value is rounded to scale
// fractional digits and must then fit precision - scale digits before
// the decimal point, or ErrValueOutOfRange is reported. NaN passes the
// constraint trivially.
func ParseExact(s string, precision, scale int) (Numeric, error) {
	if precision < 0 || precision > MaxPrecision || scale < 0 || scale > precision {
		return Numeric{}, fmt.Errorf("numeric: invalid precision %d, scale %d: %w",
			precision, scale, ErrInvalidArgument)
	}
	if strings.EqualFold(strings.TrimSpace(s), "NaN") {
		return NaN(), nil
	}
	var v numvar
	if err := v.setString(s); err != nil {
		return Numeric{}, fmt.Errorf("numeric: %w", err)
	}
	if err := v.applyPrecision(precision, scale); err != nil {
		return Numeric{}, fmt.Errorf("numeric: %w", err)
	}
	return v.pack()
}

// NewFromInt64 returns the Numeric with the value of v and scale 0.
func NewFromInt64(v int64) Numeric {
	var z numvar
	z.setInt64(v)
	n, err := z.pack()
	if err != nil {
		// cannot happen: 19 digits fit comfortably
		panic(err)
	}
	return n
}

// NewFromInt32 returns the Numeric with the value of v and scale 0.
func NewFromInt32(v int32) Numeric {
	return NewFromInt64(int64(v))
}

// Int64 returns x rounded to the nearest integer. It reports
// ErrInvalidArgument for NaN and ErrValueOutOfRange if the value does
// not fit an int64.
func (x Numeric) Int64() (int64, error) {
	if x.IsNaN() {
		return 0, fmt.Errorf("numeric: Int64 of NaN: %w", ErrInvalidArgument)
	}
	var v numvar
	x.unpack(&v)
	i, ok := v.toInt64()
	if !ok {
		return 0, fmt.Errorf("numeric: Int64: %w", ErrValueOutOfRange)
	}
	return i, nil
}

// Int32 returns x rounded to the nearest integer. It reports
// ErrInvalidArgument for NaN and ErrValueOutOfRange if the value does
// not fit an int32.
func (x Numeric) Int32() (int32, error) {
	i, err := x.Int64()
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("numeric: Int32: %w", ErrValueOutOfRange)
	}
	return int32(i), nil
}

// NewFromFloat64 returns the Numeric nearest to f, keeping float64Digits
// significant digits. A NaN input converts to the NaN value; infinities
// report ErrValueOutOfRange.
func NewFromFloat64(f float64) (Numeric, error) {
	if math.IsNaN(f) {
		return NaN(), nil
	}
	if math.IsInf(f, 0) {
		return Numeric{}, fmt.Errorf("numeric: NewFromFloat64(%v): %w", f, ErrValueOutOfRange)
	}
	var v numvar
	if err := v.setString(strconv.FormatFloat(f, 'g', float64Digits, 64)); err != nil {
		return Numeric{}, fmt.Errorf("numeric: %w", err)
	}
	return v.pack()
}

// NewFromFloat32 is like NewFromFloat64, keeping float32Digits
// significant digits.
func NewFromFloat32(f float32) (Numeric, error) {
	if math.IsNaN(float64(f)) {
		return NaN(), nil
	}
	if math.IsInf(float64(f), 0) {
		return Numeric{}, fmt.Errorf("numeric: NewFromFloat32(%v): %w", f, ErrValueOutOfRange)
	}
	var v numvar
	if err := v.setString(strconv.FormatFloat(float64(f), 'g', float32Digits, 32)); err != nil {
		return Numeric{}, fmt.Errorf("numeric: %w", err)
	}
	return v.pack()
}

// Float64 returns the float64 nearest to x's value, by formatting at x's
// own display scale and re-parsing. NaN converts to the float NaN; a
// value beyond float64 range reports ErrValueOutOfRange.
func (x Numeric) Float64() (float64, error) {
	if x.IsNaN() {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(x.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("numeric: Float64: %w", ErrValueOutOfRange)
	}
	return f, nil
}

// Float32 is the float32 counterpart of Float64.
func (x Numeric) Float32() (float32, error) {
	if x.IsNaN() {
		return float32(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(x.String(), 32)
	if err != nil {
		return 0, fmt.Errorf("numeric: Float32: %w", ErrValueOutOfRange)
	}
	return float32(f), nil
}
