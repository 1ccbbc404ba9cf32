// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math"
)

// ln sets z to the natural logarithm of x with rscale fractional digits.
//
// The argument is reduced into (0.9, 1.1) by repeated square roots, each
// doubling the compensation factor, and the reduced value is summed with
// the Taylor series for atanh(z') = ln((1+z')/(1-z'))/2,
//
//	z' + z'^3/3 + z'^5/5 + ...
//
// whose factor 2 is carried by the compensation factor's initial value,
// where z' = (x-1)/(x+1) lies in roughly -0.053 .. 0.048 after the range
// reduction. z may alias x.
func (z *numvar) ln(x *numvar, rscale int) error {
	cmp := x.cmp(&varZero)
	if cmp <= 0 {
		return ErrInvalidArgument
	}

	localRscale := rscale + 8

	var xs, xx, ni, elem, fact numvar
	xs.set(x)
	fact.set(&varTwo)

	// reduce the input into the range 0.9 < x < 1.1
	for xs.cmp(&varZeroPointNine) <= 0 {
		localRscale++
		if err := xs.sqrt(&xs, localRscale); err != nil {
			return err
		}
		fact.mul(&fact, &varTwo, 0)
	}
	for xs.cmp(&varOnePointOne) >= 0 {
		localRscale++
		if err := xs.sqrt(&xs, localRscale); err != nil {
			return err
		}
		fact.mul(&fact, &varTwo, 0)
	}

	// z' = (x-1)/(x+1); the convergence of the series is not as fast as
	// one would like, but tolerable given that z' is small
	z.sub(&xs, &varOne)
	elem.add(&xs, &varOne)
	if err := z.divFast(z, &elem, localRscale, true); err != nil {
		return err
	}
	xx.set(z)
	xs.mul(z, z, localRscale) // xs = z'^2

	ni.set(&varOne)

	for {
		ni.add(&ni, &varTwo)
		xx.mul(&xx, &xs, localRscale)
		elem.divFast(&xx, &ni, localRscale, true)

		if len(elem.digits) == 0 {
			break
		}

		z.add(z, &elem)

		if elem.weight < z.weight-localRscale*2/decDigits {
			break
		}
	}

	// compensate for the argument range reduction, and round
	z.mul(z, &fact, localRscale)
	z.round(rscale)
	return nil
}

// lnScale returns the result scale for a logarithm of x, following the
// same policy as Ln: the guaranteed significant digits, less the decimal
// weight of the expected result.
func lnScale(x *numvar) int {
	// approximate decimal digits before the decimal point
	decdigits := (x.weight + 1) * decDigits

	var rscale int
	switch {
	case decdigits > 1:
		rscale = minSigDigits - int(math.Log10(float64(decdigits-1)))
	case decdigits < 1:
		rscale = minSigDigits - int(math.Log10(float64(1-decdigits)))
	default:
		rscale = minSigDigits
	}
	return rscale
}

// log sets z to the base-b logarithm of x, computed as ln(x)/ln(b) at an
// internal scale chosen like ln's, with the final division scale selected
// as for any quotient.
func (z *numvar) log(b, x *numvar) error {
	rscale := lnScale(x)
	rscale = imax(rscale, b.dscale)
	rscale = imax(rscale, x.dscale)
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)

	localRscale := rscale + 8

	var lnB, lnX numvar
	if err := lnB.ln(b, localRscale); err != nil {
		return err
	}
	if err := lnX.ln(x, localRscale); err != nil {
		return err
	}
	lnB.dscale = rscale
	lnX.dscale = rscale

	return z.divFast(&lnX, &lnB, selectDivScale(&lnX, &lnB), true)
}

// Ln returns the natural logarithm of x. Ln of NaN is NaN; a non-positive
// x reports ErrInvalidArgument.
func (x Numeric) Ln() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}

	var arg, res numvar
	x.unpack(&arg)

	rscale := lnScale(&arg)
	rscale = imax(rscale, int(x.dscale))
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)

	if err := res.ln(&arg, rscale); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Ln: %w", err)
	}
	return res.pack()
}

// Log10 returns the base-10 logarithm of x: ln(x)/ln(10). Log10 of NaN is
// NaN; a non-positive x reports ErrInvalidArgument.
func (x Numeric) Log10() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}

	var arg, res numvar
	x.unpack(&arg)
	if err := res.log(&varTen, &arg); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Log10: %w", err)
	}
	return res.pack()
}

// Log returns the base-b logarithm of x. It is NaN if either operand is
// NaN; a non-positive x or b reports ErrInvalidArgument, and b = 1
// reports ErrDivisionByZero (its logarithm is zero).
func (x Numeric) Log(b Numeric) (Numeric, error) {
	if x.IsNaN() || b.IsNaN() {
		return NaN(), nil
	}

	var base, arg, res numvar
	b.unpack(&base)
	x.unpack(&arg)

	// ln(1) = 0; fail up front rather than dividing by it
	if base.cmp(&varOne) == 0 {
		return Numeric{}, fmt.Errorf("numeric: Log: %w", ErrDivisionByZero)
	}

	if err := res.log(&base, &arg); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Log: %w", err)
	}
	return res.pack()
}
