// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Numeric-to-string conversion.

package numeric

import "fmt"

// str renders z in plain decimal notation with exactly dscale fractional
// digits, rounding z in place first.
func (z *numvar) str(dscale int) string {
	if dscale < 0 {
		dscale = 0
	}

	// round the value as needed; this may carry into a new most
	// significant word
	z.round(dscale)

	// i is the count of digits before the decimal point. Up to
	// decDigits-1 excess fractional digits are generated and trimmed
	// below; leave room for them plus sign and point.
	i := (z.weight + 1) * decDigits
	if i <= 0 {
		i = 1
	}
	buf := make([]byte, 0, i+dscale+decDigits+2)

	if z.sign == signNeg {
		buf = append(buf, '-')
	}

	// digits before the decimal point
	var d int
	if z.weight < 0 {
		d = z.weight + 1
		buf = append(buf, '0')
	} else {
		for d = 0; d <= z.weight; d++ {
			var dig word
			if d < len(z.digits) {
				dig = z.digits[d]
			}
			// in the first word, suppress leading zeroes
			putit := d > 0
			d1 := dig / 1000
			dig -= d1 * 1000
			putit = putit || d1 > 0
			if putit {
				buf = append(buf, byte(d1)+'0')
			}
			d1 = dig / 100
			dig -= d1 * 100
			putit = putit || d1 > 0
			if putit {
				buf = append(buf, byte(d1)+'0')
			}
			d1 = dig / 10
			dig -= d1 * 10
			putit = putit || d1 > 0
			if putit {
				buf = append(buf, byte(d1)+'0')
			}
			buf = append(buf, byte(dig)+'0')
		}
	}

	// If requested, output the decimal point and the digits after it. A
	// full word is emitted each time; the excess is trimmed at the end.
	if dscale > 0 {
		buf = append(buf, '.')
		reslen := len(buf) + dscale
		for i := 0; i < dscale; i, d = i+decDigits, d+1 {
			var dig word
			if d >= 0 && d < len(z.digits) {
				dig = z.digits[d]
			}
			d1 := dig / 1000
			dig -= d1 * 1000
			buf = append(buf, byte(d1)+'0')
			d1 = dig / 100
			dig -= d1 * 100
			buf = append(buf, byte(d1)+'0')
			d1 = dig / 10
			dig -= d1 * 10
			buf = append(buf, byte(d1)+'0')
			buf = append(buf, byte(dig)+'0')
		}
		buf = buf[:reslen]
	}

	return string(buf)
}

// decimalDigits returns the number of decimal digits of the word d,
// which must be nonzero.
func decimalDigits(d word) int {
	switch {
	case d < 10:
		return 1
	case d < 100:
		return 2
	case d < 1000:
		return 3
	default:
		return 4
	}
}

// sciStr renders z in scientific notation, significand e±NN, with rscale
// significand fractional digits: the exponent of the normalized form is
// determined from the first word, the value is divided by 10**exponent,
// and the quotient is rendered in plain notation. A zero value reports
// exponent zero.
func (z *numvar) sciStr(rscale int) string {
	if rscale < 0 {
		rscale = 0
	}

	var exponent int
	if len(z.digits) > 0 {
		// the leading word may hold fewer than decDigits significant
		// digits; compensate
		exponent = z.weight*decDigits + decimalDigits(z.digits[0]) - 1
	}

	denomScale := 0
	if exponent < 0 {
		denomScale = -exponent
	}

	var denominator, significand numvar
	denominator.powerInt(&varTen, exponent, denomScale)
	significand.div(z, &denominator, rscale, true)

	return fmt.Sprintf("%se%+03d", significand.str(rscale), exponent)
}

// String renders x at its own display scale. NaN renders as "NaN".
// String implements fmt.Stringer.
func (x Numeric) String() string {
	if x.IsNaN() {
		return "NaN"
	}
	var v numvar
	x.unpack(&v)
	return v.str(v.dscale)
}

// StringFixed renders x with exactly scale fractional digits, rounding
// half away from zero as needed. NaN renders as "NaN".
func (x Numeric) StringFixed(scale int) string {
	if x.IsNaN() {
		return "NaN"
	}
	var v numvar
	x.unpack(&v)
	return v.str(scale)
}

// StringSci renders x in scientific notation with scale significand
// fractional digits. NaN renders as "NaN".
func (x Numeric) StringSci(scale int) string {
	if x.IsNaN() {
		return "NaN"
	}
	var v numvar
	x.unpack(&v)
	return v.sciStr(scale)
}
