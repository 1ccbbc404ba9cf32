// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the signed arithmetic primitives over working
// values: comparison, addition, subtraction, long multiplication with
// deferred carries, Knuth 4.3.1D exact division, the float-estimated
// approximate division used by the transcendentals, modulo, and the
// ceil/floor helpers.

package numeric

import "math"

// intMax bounds the int accumulators used by mul and divFast. Keeping the
// 32-bit value (rather than the platform's) makes carry scheduling, and
// thus results, identical everywhere.
const intMax = math.MaxInt32

// cmp compares x and y. NaN is handled by the callers; here both operands
// are numbers.
func (x *numvar) cmp(y *numvar) int {
	if len(x.digits) == 0 {
		if len(y.digits) == 0 {
			return 0
		}
		if y.sign == signNeg {
			return 1
		}
		return -1
	}
	if len(y.digits) == 0 {
		if x.sign == signPos {
			return 1
		}
		return -1
	}
	if x.sign == signPos {
		if y.sign == signNeg {
			return 1
		}
		return cmpAbs(x, y)
	}
	if y.sign == signPos {
		return -1
	}
	return cmpAbs(y, x)
}

// add sets z to x + y. z may alias x or y.
func (z *numvar) add(x, y *numvar) {
	if x.sign == y.sign {
		sign := x.sign
		z.addAbs(x, y)
		z.sign = sign
		return
	}
	// opposite signs; the sign of the larger magnitude wins
	switch cmpAbs(x, y) {
	case 0:
		dscale := imax(x.dscale, y.dscale)
		z.setZero()
		z.dscale = dscale
	case 1:
		sign := x.sign
		z.subAbs(x, y)
		z.sign = sign
	case -1:
		sign := y.sign
		z.subAbs(y, x)
		z.sign = sign
	}
}

// sub sets z to x - y. z may alias x or y.
func (z *numvar) sub(x, y *numvar) {
	if x.sign != y.sign {
		sign := x.sign
		z.addAbs(x, y)
		z.sign = sign
		return
	}
	switch cmpAbs(x, y) {
	case 0:
		dscale := imax(x.dscale, y.dscale)
		z.setZero()
		z.dscale = dscale
	case 1:
		sign := x.sign
		z.subAbs(x, y)
		z.sign = sign
	case -1:
		sign := signPos
		if y.sign == signPos {
			sign = signNeg
		}
		z.subAbs(y, x)
		z.sign = sign
	}
}

// mul sets z to x * y, rounded to rscale fractional digits. The exact
// product is computed when it fits; otherwise the computation is truncated
// to rscale plus mulGuardDigits words past the point, which yields the
// correctly rounded result unless carries would have propagated through
// all the guard words. z may alias x or y.
func (z *numvar) mul(x, y *numvar, rscale int) {
	// arrange for x to be the shorter operand: the inner loop is much
	// simpler than the outer one, and a short outer loop also reduces the
	// number of accumulator normalizations
	if len(x.digits) > len(y.digits) {
		x, y = y, x
	}

	if len(x.digits) == 0 || len(y.digits) == 0 {
		z.setZero()
		z.dscale = rscale
		return
	}

	resSign := signPos
	if x.sign != y.sign {
		resSign = signNeg
	}
	resWeight := x.weight + y.weight + 2

	// Words to compute. The exact product cannot have more than
	// len(x)+len(y) words, plus one in case rscale-driven rounding carries
	// out of the top exact word.
	resNdigits := len(x.digits) + len(y.digits) + 1
	maxdigits := resWeight + 1 + (rscale+decDigits-1)/decDigits + mulGuardDigits
	resNdigits = imin(resNdigits, maxdigits)
	if resNdigits < 3 {
		// all input words would be ignored
		z.setZero()
		z.dscale = rscale
		return
	}

	// The accumulator is an int vector; intMax is comfortably larger than
	// nbase*nbase, so carries need not be propagated after every addition.
	// maxdig tracks the maximum possible accumulator entry divided by
	// nbase-1; when the worst case approaches intMax (leaving room for the
	// carries of the propagation pass itself), a normalization sweep runs.
	dig := make([]int, resNdigits)
	maxdig := 0

	// Words of x below i1 = resNdigits-3 cannot contribute to the result
	// words being computed: the x[i1]*y[i2] product lands on accumulator
	// word i1+i2+2.
	for i1 := imin(len(x.digits)-1, resNdigits-3); i1 >= 0; i1-- {
		xd := int(x.digits[i1])
		if xd == 0 {
			continue
		}

		maxdig += xd
		if maxdig > (intMax-intMax/nbase)/(nbase-1) {
			carry := 0
			for i := resNdigits - 1; i >= 0; i-- {
				d := dig[i] + carry
				if d >= nbase {
					carry = d / nbase
					d -= carry * nbase
				} else {
					carry = 0
				}
				dig[i] = d
			}
			if debugNumeric && carry != 0 {
				panic("numeric: mul carry out of accumulator")
			}
			// new worst case
			maxdig = 1 + xd
		}

		i := i1 + imin(len(y.digits)-1, resNdigits-i1-3) + 2
		for i2 := imin(len(y.digits)-1, resNdigits-i1-3); i2 >= 0; i2-- {
			dig[i] += xd * int(y.digits[i2])
			i--
		}
	}

	// final carry propagation, storing into the result
	res := make([]word, resNdigits)
	carry := 0
	for i := resNdigits - 1; i >= 0; i-- {
		d := dig[i] + carry
		if d >= nbase {
			carry = d / nbase
			d -= carry * nbase
		} else {
			carry = 0
		}
		res[i] = word(d)
	}
	if debugNumeric && carry != 0 {
		panic("numeric: mul carry out of result")
	}

	z.digits = res
	z.weight = resWeight
	z.sign = resSign
	z.round(rscale)
	z.strip()
}

// div sets z to x / y with rscale fractional digits, rounding half away
// from zero if round is set and truncating toward zero otherwise. This is
// the exact schoolbook division (Knuth volume 2, Algorithm 4.3.1D, with
// the single-word fast path of section 4.3.1 exercise 16); each produced
// digit is correct. z may alias x or y.
func (z *numvar) div(x, y *numvar, rscale int, round bool) error {
	if y.isZero() {
		return ErrDivisionByZero
	}
	if len(x.digits) == 0 {
		z.setZero()
		z.dscale = rscale
		return nil
	}

	resSign := signPos
	if x.sign != y.sign {
		resSign = signNeg
	}
	resWeight := x.weight - y.weight

	// quotient digits to produce, and one extra for correct rounding
	resNdigits := resWeight + 1 + (rscale+decDigits-1)/decDigits
	resNdigits = imax(resNdigits, 1)
	if round {
		resNdigits++
	}

	// The working dividend normally needs resNdigits + len(y.digits)
	// words, but at least len(x.digits) so all of x can be loaded into it.
	// dividend[0] is an extra leading word for the normalization carry, in
	// keeping with Knuth's notation; divisor[0] likewise stays zero.
	divNdigits := imax(resNdigits+len(y.digits), len(x.digits))

	dividend := make([]word, divNdigits+1)
	divisor := make([]word, len(y.digits)+1)
	copy(dividend[1:], x.digits)
	copy(divisor[1:], y.digits)

	res := make([]word, resNdigits)

	if len(y.digits) == 1 {
		// single divisor word: plain short division
		d := int(divisor[1])
		carry := 0
		for i := 0; i < resNdigits; i++ {
			carry = carry*nbase + int(dividend[i+1])
			res[i] = word(carry / d)
			carry = carry % d
		}
	} else {
		// D1: need divisor[1] >= nbase/2; if not, scale up both operands
		// by d. dividend[0] leaves room for the carry.
		if divisor[1] < halfNbase {
			d := nbase / (int(divisor[1]) + 1)

			carry := 0
			for i := len(y.digits); i > 0; i-- {
				carry += int(divisor[i]) * d
				divisor[i] = word(carry % nbase)
				carry /= nbase
			}
			if debugNumeric && carry != 0 {
				panic("numeric: div normalization carry (divisor)")
			}
			carry = 0
			// only the first len(x.digits) dividend words can be nonzero
			for i := len(x.digits); i >= 0; i-- {
				carry += int(dividend[i]) * d
				dividend[i] = word(carry % nbase)
				carry /= nbase
			}
			if debugNumeric && carry != 0 {
				panic("numeric: div normalization carry (dividend)")
			}
		}

		// the first two divisor words are used repeatedly in the main loop
		divisor1 := int(divisor[1])
		divisor2 := int(divisor[2])

		// Process one quotient digit per iteration, dividing
		// dividend[j .. j+len(y.digits)] by the divisor.
		for j := 0; j < resNdigits; j++ {
			// D3: estimate the quotient digit from the first two dividend
			// words
			next2digits := int(dividend[j])*nbase + int(dividend[j+1])

			// if both are zero the quotient digit must be zero, and the
			// working dividend needs no adjustment; worth testing to fall
			// out fast on long dividends
			if next2digits == 0 {
				res[j] = 0
				continue
			}

			var qhat int
			if int(dividend[j]) == divisor1 {
				qhat = nbase - 1
			} else {
				qhat = next2digits / divisor1
			}

			// Lower the estimate if it's too large. Knuth proves the digit
			// is now correct or just one too large. (dividend[j+2] exists
			// because the divisor has at least two words.)
			for divisor2*qhat > (next2digits-qhat*divisor1)*nbase+int(dividend[j+2]) {
				qhat--
			}

			if qhat > 0 {
				// D4: multiply and subtract, folded together. qhat may be
				// one too large, so the per-word result lies in
				// [-nbase^2, nbase-1] and the borrow in [0, nbase].
				borrow := 0
				for i := len(y.digits); i >= 0; i-- {
					tmp := int(dividend[j+i]) - borrow - int(divisor[i])*qhat
					borrow = (nbase - 1 - tmp) / nbase
					dividend[j+i] = word(tmp + borrow*nbase)
				}

				// A borrow out of the top word means qhat was in fact one
				// too large; decrement it and add the divisor back.
				if borrow > 0 {
					qhat--
					carry := 0
					for i := len(y.digits); i >= 0; i-- {
						carry += int(dividend[j+i]) + int(divisor[i])
						if carry >= nbase {
							dividend[j+i] = word(carry - nbase)
							carry = 1
						} else {
							dividend[j+i] = word(carry)
							carry = 0
						}
					}
					// the carry cancels the borrow above
					if debugNumeric && carry != 1 {
						panic("numeric: div add-back carry")
					}
				}
			}

			res[j] = word(qhat)
		}
	}

	z.digits = res
	z.weight = resWeight
	z.sign = resSign
	if round {
		z.round(rscale)
	} else {
		z.trunc(rscale)
	}
	z.strip()
	return nil
}

// divFast sets z to x / y with rscale fractional digits like div, but
// estimates each quotient digit by float division of the leading dividend
// words by the leading divisor words, folding the residual into the next
// position. The last few guard digits can be wrong, so this is used only
// inside the transcendentals, where the result is approximate anyway.
// z may alias x or y.
func (z *numvar) divFast(x, y *numvar, rscale int, round bool) error {
	if y.isZero() {
		return ErrDivisionByZero
	}
	if len(x.digits) == 0 {
		z.setZero()
		z.dscale = rscale
		return nil
	}

	resSign := signPos
	if x.sign != y.sign {
		resSign = signNeg
	}
	resWeight := x.weight - y.weight + 1

	// quotient digits to produce, plus guard digits to absorb estimation
	// error
	divNdigits := resWeight + 1 + (rscale+decDigits-1)/decDigits
	divNdigits += divGuardDigits
	divNdigits = imax(divNdigits, divGuardDigits)
	divNdigits = imax(divNdigits, len(x.digits))

	// working dividend, one word per entry; entries go transiently
	// negative as divisor multiples are subtracted
	div := make([]int, divNdigits+1)
	for i, d := range x.digits {
		div[i+1] = int(d)
	}

	// the divisor approximated by its four leading words
	fdivisor := float64(y.digits[0])
	for i := 1; i < 4; i++ {
		fdivisor *= nbase
		if i < len(y.digits) {
			fdivisor += float64(y.digits[i])
		}
	}
	fdivisorinverse := 1.0 / fdivisor

	// maxdiv tracks the maximum absolute value of any div[] entry divided
	// by nbase-1; when it threatens the int headroom a carry sweep
	// renormalizes the working dividend.
	maxdiv := 1

	ydigits := y.digits
	qi := 0
	for ; qi < divNdigits; qi++ {
		// approximate the current dividend value from four words
		fdividend := float64(div[qi])
		for i := 1; i < 4; i++ {
			fdividend *= nbase
			if qi+i <= divNdigits {
				fdividend += float64(div[qi+i])
			}
		}
		// and the quotient digit, truncated toward -infinity
		fquotient := fdividend * fdivisorinverse
		qdigit := int(fquotient)
		if fquotient < 0 && float64(qdigit) != fquotient {
			qdigit--
		}

		if qdigit != 0 {
			// time to normalize?
			maxdiv += iabs(qdigit)
			if maxdiv > (intMax-intMax/nbase-1)/(nbase-1) {
				carry := 0
				for i := divNdigits; i > qi; i-- {
					d := div[i] + carry
					if d < 0 {
						carry = -((-d - 1) / nbase) - 1
						d -= carry * nbase
					} else if d >= nbase {
						carry = d / nbase
						d -= carry * nbase
					} else {
						carry = 0
					}
					div[i] = d
				}
				div[qi] += carry

				// everything except div[qi] is now in [0, nbase)
				maxdiv = imax(iabs(div[qi])/(nbase-1), 1)

				// recompute the quotient digit: new information may have
				// propagated into the top dividend words
				fdividend = float64(div[qi])
				for i := 1; i < 4; i++ {
					fdividend *= nbase
					if qi+i <= divNdigits {
						fdividend += float64(div[qi+i])
					}
				}
				fquotient = fdividend * fdivisorinverse
				qdigit = int(fquotient)
				if fquotient < 0 && float64(qdigit) != fquotient {
					qdigit--
				}
				maxdiv += iabs(qdigit)
			}

			// subtract the appropriate multiple of the divisor
			if qdigit != 0 {
				istop := imin(len(ydigits), divNdigits-qi+1)
				for i := 0; i < istop; i++ {
					div[qi+i] -= qdigit * int(ydigits[i])
				}
			}
		}

		// The dividend word being replaced may still be nonzero; fold it
		// into the next position. It nearly cancels with the subtraction
		// above, so no overflow concern here.
		div[qi+1] += div[qi] * nbase
		div[qi] = qdigit
	}

	// approximate and store the last quotient digit
	fdividend := float64(div[qi])
	for i := 1; i < 4; i++ {
		fdividend *= nbase
	}
	fquotient := fdividend * fdivisorinverse
	qdigit := int(fquotient)
	if fquotient < 0 && float64(qdigit) != fquotient {
		qdigit--
	}
	div[qi] = qdigit

	// Final carry propagation pass, combined with storing the result
	// digits. Still done at full precision with the guard digits.
	res := make([]word, divNdigits+1)
	carry := 0
	for i := divNdigits; i >= 0; i-- {
		d := div[i] + carry
		if d < 0 {
			carry = -((-d - 1) / nbase) - 1
			d -= carry * nbase
		} else if d >= nbase {
			carry = d / nbase
			d -= carry * nbase
		} else {
			carry = 0
		}
		res[i] = word(d)
	}
	if debugNumeric && carry != 0 {
		panic("numeric: divFast carry out of result")
	}

	z.digits = res
	z.weight = resWeight
	z.sign = resSign
	if round {
		z.round(rscale)
	} else {
		z.trunc(rscale)
	}
	z.strip()
	return nil
}

// selectDivScale returns the result scale for a division, guaranteeing at
// least minSigDigits significant digits while not dropping below either
// input's display scale.
func selectDivScale(x, y *numvar) int {
	// actual weight and first digit of each input, ignoring any leading
	// zero words
	weight1, firstdigit1 := 0, 0
	for i, d := range x.digits {
		if d != 0 {
			firstdigit1 = int(d)
			weight1 = x.weight - i
			break
		}
	}
	weight2, firstdigit2 := 0, 0
	for i, d := range y.digits {
		if d != 0 {
			firstdigit2 = int(d)
			weight2 = y.weight - i
			break
		}
	}

	// Estimate the quotient weight. If the two first digits are equal we
	// can't be sure, but assume the dividend is smaller.
	qweight := weight1 - weight2
	if firstdigit1 <= firstdigit2 {
		qweight--
	}

	rscale := minSigDigits - qweight*decDigits
	rscale = imax(rscale, x.dscale)
	rscale = imax(rscale, y.dscale)
	rscale = imax(rscale, minDisplayScale)
	rscale = imin(rscale, MaxDisplayScale)
	return rscale
}

// mod sets z to x - trunc(x/y)*y. z may alias x or y.
func (z *numvar) mod(x, y *numvar) error {
	var tmp numvar
	if err := tmp.div(x, y, 0, false); err != nil {
		return err
	}
	tmp.mul(y, &tmp, y.dscale)
	z.sub(x, &tmp)
	return nil
}

// ceil sets z to the smallest integer not less than x.
func (z *numvar) ceil(x *numvar) {
	var tmp numvar
	tmp.set(x)
	tmp.trunc(0)
	if x.sign == signPos && x.cmp(&tmp) != 0 {
		tmp.add(&tmp, &varOne)
	}
	z.set(&tmp)
}

// floor sets z to the largest integer not greater than x.
func (z *numvar) floor(x *numvar) {
	var tmp numvar
	tmp.set(x)
	tmp.trunc(0)
	if x.sign == signNeg && x.cmp(&tmp) != 0 {
		tmp.sub(&tmp, &varOne)
	}
	z.set(&tmp)
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
