// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"0.12", "0.12"},
		{"-12.345", "-12.345"},
		{"+3.4", "3.4"},
		{".5", "0.5"},
		{"5.", "5"},
		{"  42  ", "42"},
		{"007", "7"},
		{"0.000", "0.000"},
		{"1.2e3", "1200"},
		{"1.2E3", "1200"},
		{"1.2e+3", "1200"},
		{"1.2e-2", "0.012"},
		{"-0", "0"},
		{"12345678901234567890.123456789", "12345678901234567890.123456789"},
	} {
		n, err := Parse(test.in)
		require.NoError(t, err, "Parse(%q)", test.in)
		assert.Equal(t, test.want, n.String(), "Parse(%q)", test.in)
	}
}

func TestParseNaN(t *testing.T) {
	for _, in := range []string{"NaN", "nan", "NAN", "  NaN  "} {
		n, err := Parse(in)
		require.NoError(t, err, "Parse(%q)", in)
		assert.True(t, n.IsNaN(), "Parse(%q)", in)
		assert.Equal(t, "NaN", n.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		in   string
		want error
	}{
		{"", ErrInvalidArgument},
		{"   ", ErrInvalidArgument},
		{"abc", ErrInvalidArgument},
		{"+", ErrInvalidArgument},
		{".", ErrInvalidArgument},
		{"1..2", ErrInvalidArgument},
		{"1.2.3", ErrInvalidArgument},
		{"12e", ErrInvalidArgument},
		{"12e+", ErrInvalidArgument},
		{"e12", ErrInvalidArgument},
		{"12a", ErrInvalidArgument},
		{"1 2", ErrInvalidArgument},
		{"--1", ErrInvalidArgument},
		{"1e99999", ErrValueOutOfRange},
		{"1e-99999", ErrValueOutOfRange},
	} {
		_, err := Parse(test.in)
		assert.ErrorIs(t, err, test.want, "Parse(%q)", test.in)
	}
}

func TestParseExact(t *testing.T) {
	n, err := ParseExact("123.456", 6, 2)
	require.NoError(t, err)
	assert.Equal(t, "123.46", n.String())

	n, err = ParseExact("0.12", 4, 2)
	require.NoError(t, err)
	assert.Equal(t, "0.12", n.String())

	// rounding may carry into a new integer digit, which must still fit
	n, err = ParseExact("9.99", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "10", n.String())

	_, err = ParseExact("1234.5", 5, 2)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = ParseExact("1", -1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseExact("1", 2, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	n, err = ParseExact("NaN", 4, 2)
	require.NoError(t, err)
	assert.True(t, n.IsNaN())
}

func TestInt64(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"12.4", 12},
		{"12.5", 13},
		{"-12.5", -13},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	} {
		n := MustParse(test.in)
		got, err := n.Int64()
		require.NoError(t, err, "Int64(%q)", test.in)
		assert.Equal(t, test.want, got, "Int64(%q)", test.in)
	}

	_, err := MustParse("9223372036854775808").Int64()
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NaN().Int64()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInt32(t *testing.T) {
	got, err := MustParse("-2147483648").Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), got)

	_, err = MustParse("3000000000").Int32()
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NaN().Int32()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewFromInt64(t *testing.T) {
	for _, test := range []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-123456789, "-123456789"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	} {
		assert.Equal(t, test.want, NewFromInt64(test.in).String(), "NewFromInt64(%d)", test.in)
	}
	assert.Equal(t, "-42", NewFromInt32(-42).String())
}

func TestIntRoundTrip(t *testing.T) {
	// from_int64(to_int64(a)) == trunc(a, 0) for integer-valued a
	for _, s := range []string{"0", "1", "-1", "123456", "-99999999"} {
		a := MustParse(s)
		i, err := a.Int64()
		require.NoError(t, err)
		tr, err := a.Trunc(0)
		require.NoError(t, err)
		assert.Zero(t, NewFromInt64(i).Cmp(tr), "round trip of %q", s)
	}
}

func TestFloat64(t *testing.T) {
	n, err := NewFromFloat64(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", n.String())

	n, err = NewFromFloat64(-123456.789)
	require.NoError(t, err)
	assert.Equal(t, "-123456.789", n.String())

	f, err := MustParse("2.5").Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = NewFromFloat64(math.Inf(1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	n, err = NewFromFloat64(math.NaN())
	require.NoError(t, err)
	assert.True(t, n.IsNaN())

	f, err = NaN().Float64()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))
}

func TestFloat32(t *testing.T) {
	n, err := NewFromFloat32(2.5)
	require.NoError(t, err)
	assert.Equal(t, "2.5", n.String())

	f, err := MustParse("0.25").Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f)

	_, err = NewFromFloat32(float32(math.Inf(-1)))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestStringRoundTrip(t *testing.T) {
	// from_str(to_str(a)) == a, including the display scale
	for _, s := range []string{
		"0", "0.000", "1", "-1", "0.12", "-12.345", "1200", "0.012",
		"99999999999999999999.9999999999",
	} {
		a := MustParse(s)
		b := MustParse(a.String())
		assert.Zero(t, a.Cmp(b), "round trip of %q", s)
		assert.Equal(t, a.Scale(), b.Scale(), "scale of %q", s)
	}
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
	assert.Panics(t, func() { MustParseExact("12345", 4, 2) })
	assert.NotPanics(t, func() { MustParseExact("1.5", 4, 2) })
}
