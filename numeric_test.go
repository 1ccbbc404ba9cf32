// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

var numericZero Numeric

// required implemented interfaces
var (
	_ fmt.Stringer             = numericZero
	_ encoding.TextMarshaler   = numericZero
	_ encoding.TextUnmarshaler = &numericZero
	_ gob.GobEncoder           = numericZero
	_ gob.GobDecoder           = &numericZero
	_ driver.Valuer            = numericZero

	_ interface{ Scan(src any) error } = &numericZero
)

func TestNumericZeroValue(t *testing.T) {
	// the zero (uninitialized) value is a ready-to-use 0
	var x Numeric
	assert.Equal(t, "0", x.String())
	assert.True(t, x.IsZero())
	assert.False(t, x.IsNaN())
	assert.Equal(t, 0, x.Sign())
	assert.Equal(t, 0, x.Scale())

	// and can be used in all positions of binary operations
	z, err := x.Add(MustParse("1.5"))
	assert.NoError(t, err)
	assert.Equal(t, "1.5", z.String())
	z, err = MustParse("1.5").Mul(x)
	assert.NoError(t, err)
	assert.Equal(t, "0.0", z.String())
}

func TestSignAbsNeg(t *testing.T) {
	for _, test := range []struct {
		in   string
		sign int
		abs  string
		neg  string
	}{
		{"0", 0, "0", "0"},
		{"12.5", 1, "12.5", "-12.5"},
		{"-12.5", -1, "12.5", "12.5"},
	} {
		x := MustParse(test.in)
		assert.Equal(t, test.sign, x.Sign(), "sign(%s)", test.in)
		assert.Equal(t, test.abs, x.Abs().String(), "abs(%s)", test.in)
		assert.Equal(t, test.neg, x.Neg().String(), "neg(%s)", test.in)
	}

	assert.Equal(t, 1, NaN().Sign())
	assert.True(t, NaN().Abs().IsNaN())
	assert.True(t, NaN().Neg().IsNaN())
}

func TestCmp(t *testing.T) {
	for _, test := range []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"0", "0.000", 0},
		{"1", "1.0", 0},
		{"1", "2", -1},
		{"-1", "1", -1},
		{"-1", "-2", 1},
		{"12.345", "12.346", -1},
		{"10000", "9999", 1},
		{"0.00001", "0", 1},
		{"NaN", "12.345", 1},
		{"12.345", "NaN", -1},
		{"NaN", "NaN", 0},
	} {
		x, y := MustParse(test.x), MustParse(test.y)
		assert.Equal(t, test.want, x.Cmp(y), "cmp(%s, %s)", test.x, test.y)
		assert.Equal(t, -test.want, y.Cmp(x), "cmp(%s, %s)", test.y, test.x)
	}
}

func TestPredicates(t *testing.T) {
	x, y := MustParse("1.5"), MustParse("2.5")
	assert.True(t, x.Less(y))
	assert.True(t, x.LessOrEqual(y))
	assert.True(t, y.Greater(x))
	assert.True(t, y.GreaterOrEqual(x))
	assert.False(t, x.Equal(y))
	assert.True(t, x.Equal(MustParse("1.50")))
}

func TestMinMax(t *testing.T) {
	x, y := MustParse("1.5"), MustParse("-2")
	assert.Equal(t, "-2", x.Min(y).String())
	assert.Equal(t, "1.5", x.Max(y).String())

	// NaN wins max and loses min
	assert.Equal(t, "1.5", x.Min(NaN()).String())
	assert.True(t, x.Max(NaN()).IsNaN())
	assert.Equal(t, "1.5", NaN().Min(x).String())
	assert.True(t, NaN().Max(x).IsNaN())
}

func TestSortOrder(t *testing.T) {
	vals := []Numeric{
		MustParse("3.14"),
		NaN(),
		MustParse("-5"),
		MustParse("0"),
		MustParse("-0.001"),
		MustParse("1e10"),
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i].Cmp(vals[j]) < 0 })

	got := make([]string, len(vals))
	for i, v := range vals {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"-5", "-0.001", "0", "3.14", "10000000000", "NaN"}, got)
}

func TestStringFixed(t *testing.T) {
	for _, test := range []struct {
		in    string
		scale int
		want  string
	}{
		{"12.345", 2, "12.35"},
		{"12.345", 1, "12.3"},
		{"12.5", 0, "13"},
		{"0.12", 1, "0.1"},
		{"0", 3, "0.000"},
		{"-1.005", 2, "-1.01"},
		{"7", 2, "7.00"},
	} {
		assert.Equal(t, test.want, MustParse(test.in).StringFixed(test.scale),
			"StringFixed(%s, %d)", test.in, test.scale)
	}
	assert.Equal(t, "NaN", NaN().StringFixed(2))
}

func TestStringSci(t *testing.T) {
	for _, test := range []struct {
		in    string
		scale int
		want  string
	}{
		{"0.12", 1, "1.2e-01"},
		{"1234", 3, "1.234e+03"},
		{"-1234", 3, "-1.234e+03"},
		{"0.00001", 2, "1.00e-05"},
		{"0", 0, "0e+00"},
		{"12345678", 4, "1.2346e+07"},
	} {
		assert.Equal(t, test.want, MustParse(test.in).StringSci(test.scale),
			"StringSci(%s, %d)", test.in, test.scale)
	}
	assert.Equal(t, "NaN", NaN().StringSci(2))
}
