// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "fmt"

// exp sets z to e**x with rscale fractional digits.
//
// The integral and fractional parts of x are separated, so that
//
//	e^x = e^xint * e^xfrac
//
// where e^xfrac is computed by expTaylor (the limited input range lets a
// plain Taylor series do a good job) and e^xint by raising e itself with
// powerInt. z may alias x.
func (z *numvar) exp(x *numvar, rscale int) error {
	var xf numvar
	xf.set(x)

	xneg := false
	if xf.sign == signNeg {
		xneg = true
		xf.sign = signPos
	}

	// extract the integer part, removing it from xf
	xintval := 0
	for xf.weight >= 0 {
		xintval *= nbase
		if len(xf.digits) > 0 {
			xintval += int(xf.digits[0])
			xf.digits = xf.digits[1:]
		}
		xf.weight--
		if xintval >= maxResultScale*3 {
			return ErrValueOutOfRange
		}
	}

	localRscale := rscale + mulGuardDigits*2

	// e^xfrac
	z.expTaylor(&xf, localRscale)

	// multiply by e^xint if there is an integer part
	if xintval > 0 {
		var e numvar
		e.expTaylor(&varOne, localRscale)
		e.powerInt(&e, xintval, localRscale)
		z.mul(&e, z, localRscale)
	}

	// compensate for the input sign, and round to the requested rscale
	if xneg {
		return z.divFast(&varOne, z, rscale, true)
	}
	z.round(rscale)
	return nil
}

// expTaylor sets z to e**x for 0 <= x, computed by halving x until it is
// at most 0.01, summing the Taylor series
//
//	e^x = 1 + x + x^2/2! + x^3/3! + ...
//
// until a term vanishes at the local scale, and squaring the sum once per
// halving. The caller rounds.
func (z *numvar) expTaylor(x *numvar, rscale int) {
	var xs, xpow, ifac, elem, ni numvar
	xs.set(x)

	if debugNumeric && xs.sign != signPos {
		panic("numeric: expTaylor of negative argument")
	}

	localRscale := rscale + 8

	// reduce the input into the range 0 <= x <= 0.01
	ndiv2 := 0
	for xs.cmp(&varZeroPointZeroOne) > 0 {
		ndiv2++
		localRscale++
		xs.mul(&xs, &varZeroPointFive, xs.dscale+1)
	}

	// Sum the series until the terms fall below the local scale limit;
	// the limited range of x makes this converge reasonably quickly.
	z.add(&varOne, &xs)
	xpow.set(&xs)
	ifac.set(&varOne)
	ni.set(&varOne)

	for {
		ni.add(&ni, &varOne)
		xpow.mul(&xpow, &xs, localRscale)
		ifac.mul(&ifac, &ni, 0)
		elem.divFast(&xpow, &ifac, localRscale, true)

		if len(elem.digits) == 0 {
			break
		}

		z.add(z, &elem)
	}

	// compensate for the argument range reduction
	for ; ndiv2 > 0; ndiv2-- {
		z.mul(z, z, localRscale)
	}
}

// Exp returns e raised to the power of x, with a result scale chosen from
// a floating-point estimate of the result's decimal weight so that the
// guaranteed number of significant digits is carried. Exp of NaN is NaN;
// an argument whose integer part is too large reports ErrValueOutOfRange.
func (x Numeric) Exp() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}

	var arg, res numvar
	x.unpack(&arg)

	// log10(result) = x * log10(e), so this approximates the decimal
	// weight of the result; clamp to something that cannot overflow the
	// scale arithmetic.
	val := arg.toFloat64() * 0.434294481903252
	if val < -maxResultScale {
		val = -maxResultScale
	}
	if val > maxResultScale {
		val = maxResultScale
	}

	rscale := minSigDigits - int(val)
	rscale = imax(rscale, int(x.dscale))
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)

	if err := res.exp(&arg, rscale); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Exp: %w", err)
	}
	return res.pack()
}
