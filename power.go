// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "fmt"

// powerInt sets z to b**exp with rscale fractional digits, using binary
// exponentiation over b² for the general case. z may alias b.
func (z *numvar) powerInt(b *numvar, exp int, rscale int) error {
	switch exp {
	case 0:
		// 0 ^ 0 = 1 by convention
		z.set(&varOne)
		z.dscale = rscale // no need to round
		return nil
	case 1:
		z.set(b)
		z.round(rscale)
		return nil
	case -1:
		return z.div(&varOne, b, rscale, true)
	case 2:
		z.mul(b, b, rscale)
		return nil
	}

	// Repeatedly multiply by b following the bit pattern of exp, with a
	// few extra words of precision.
	neg := exp < 0
	exp = iabs(exp)

	localRscale := rscale + mulGuardDigits*2

	var baseProd numvar
	baseProd.set(b)

	if exp&1 != 0 {
		z.set(b)
	} else {
		z.set(&varOne)
	}

	for exp >>= 1; exp > 0; exp >>= 1 {
		baseProd.mul(&baseProd, &baseProd, localRscale)
		if exp&1 != 0 {
			z.mul(&baseProd, z, localRscale)
		}
	}

	// compensate for the exponent sign, and round to the requested rscale
	if neg {
		return z.divFast(&varOne, z, rscale, true)
	}
	z.round(rscale)
	return nil
}

// power sets z to b**x. An integral x within machine range dispatches to
// powerInt; otherwise the result is exp(x · ln b), which requires b > 0.
// z may alias b or x.
func (z *numvar) power(b, x *numvar) error {
	// use powerInt if x is representable as a machine-sized integer
	if len(x.digits) == 0 || len(x.digits) <= x.weight+1 {
		var tmp numvar
		tmp.set(x)
		if expval64, ok := tmp.toInt64(); ok {
			expval := int32(expval64)
			if int64(expval) == expval64 {
				rscale := minSigDigits
				rscale = imax(rscale, b.dscale)
				rscale = imax(rscale, minDisplayScale)
				rscale = imin(rscale, MaxDisplayScale)

				return z.powerInt(b, int(expval), rscale)
			}
		}
	}

	// b = 0 would fail the logarithm below; with the negative-exponent
	// case already rejected by the caller, the result is plainly zero
	if b.isZero() {
		z.setZero()
		z.dscale = minSigDigits
		return nil
	}

	// Scale for the ln() calculation: extra accuracy is needed here, as
	// errors are amplified by the exponentiation.
	rscale := lnScale(b) + minSigDigits // minSigDigits*2 less the weight adjustment
	rscale = imax(rscale, b.dscale*2)
	rscale = imax(rscale, x.dscale*2)
	rscale = imax(rscale, minDisplayScale*2)
	rscale = imin(rscale, MaxDisplayScale*2)

	localRscale := rscale + 8

	var lnB, lnNum numvar
	if err := lnB.ln(b, localRscale); err != nil {
		return err
	}
	lnNum.mul(&lnB, x, localRscale)

	// scale for exp(), from a floating-point estimate of the result's
	// decimal weight
	val := lnNum.toFloat64() * 0.434294481903252
	if val < -maxResultScale {
		val = -maxResultScale
	}
	if val > maxResultScale {
		val = maxResultScale
	}

	rscale = minSigDigits - int(val)
	rscale = imax(rscale, b.dscale)
	rscale = imax(rscale, x.dscale)
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)

	return z.exp(&lnNum, rscale)
}

// Pow returns x**y. It is NaN if either operand is NaN. Zero raised to a
// negative power and a negative x raised to a non-integral power report
// ErrInvalidArgument; x**0 is 1 for every x, including zero.
func (x Numeric) Pow(y Numeric) (Numeric, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN(), nil
	}

	var base, exp, res numvar
	x.unpack(&base)
	y.unpack(&exp)

	if base.isZero() && exp.sign == signNeg && !exp.isZero() {
		return Numeric{}, fmt.Errorf("numeric: Pow: %w", ErrInvalidArgument)
	}
	if base.sign == signNeg && len(exp.digits) > exp.weight+1 {
		// negative base with a non-integral exponent
		return Numeric{}, fmt.Errorf("numeric: Pow: %w", ErrInvalidArgument)
	}

	if err := res.power(&base, &exp); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Pow: %w", err)
	}
	return res.pack()
}
