// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "fmt"

// sqrt sets z to the square root of x with rscale fractional digits,
// using Newton's iteration
//
//	z ← (z + x/z) / 2
//
// at a local scale augmented by 8 guard digits. The initial guess halves
// the first word and the weight; the loop stops when two successive
// iterates compare equal at the local scale. z may alias x.
func (z *numvar) sqrt(x *numvar, rscale int) error {
	localRscale := rscale + 8

	stat := x.cmp(&varZero)
	if stat == 0 {
		z.setZero()
		z.dscale = rscale
		return nil
	}
	if stat < 0 {
		return ErrInvalidArgument
	}

	// copy the argument in case z aliases it
	var tmpArg, tmpVal, lastVal numvar
	tmpArg.set(x)

	// initial guess
	z.alloc(1)
	z.digits[0] = tmpArg.digits[0] / 2
	if z.digits[0] == 0 {
		z.digits[0] = 1
	}
	z.weight = tmpArg.weight / 2
	z.dscale = 0
	z.sign = signPos

	lastVal.set(z)

	for {
		if err := tmpVal.divFast(&tmpArg, z, localRscale, true); err != nil {
			return err
		}
		z.add(z, &tmpVal)
		z.mul(z, &varZeroPointFive, localRscale)

		if lastVal.cmp(z) == 0 {
			break
		}
		lastVal.set(z)
	}

	z.round(rscale)
	return nil
}

// Sqrt returns the square root of x, with a result scale chosen to carry
// at least the guaranteed number of significant digits but never less
// than x's own display scale. Sqrt of NaN is NaN; a negative x reports
// ErrInvalidArgument.
func (x Numeric) Sqrt() (Numeric, error) {
	if x.IsNaN() {
		return NaN(), nil
	}

	// Assume the result has the same number of significant digits as the
	// square root's integer part has decimal digits, and pad to the
	// minimum guarantee.
	sweight := (int(x.weight)+1)*decDigits/2 - 1
	rscale := minSigDigits - sweight
	rscale = imax(rscale, int(x.dscale))
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)

	var arg, res numvar
	x.unpack(&arg)
	if err := res.sqrt(&arg, rscale); err != nil {
		return Numeric{}, fmt.Errorf("numeric: Sqrt: %w", err)
	}
	return res.pack()
}
