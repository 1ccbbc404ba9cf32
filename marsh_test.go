// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var marshTestValues = []string{
	"0", "0.000", "1", "-1.5", "12.345", "-12.345", "1200", "0.012",
	"99999999999999999999.9999999999", "NaN",
}

func TestTextMarshal(t *testing.T) {
	for _, s := range marshTestValues {
		x := MustParse(s)
		text, err := x.MarshalText()
		require.NoError(t, err)

		var y Numeric
		require.NoError(t, y.UnmarshalText(text))
		assert.Zero(t, x.Cmp(y), "text round trip of %q", s)
		assert.Equal(t, x.String(), y.String(), "text round trip of %q", s)
	}

	var z Numeric
	assert.Error(t, z.UnmarshalText([]byte("bogus")))
}

func TestJSON(t *testing.T) {
	x := MustParse("12.345")
	b, err := json.Marshal(x)
	require.NoError(t, err)
	assert.Equal(t, `"12.345"`, string(b))

	var y Numeric
	require.NoError(t, json.Unmarshal(b, &y))
	assert.Equal(t, "12.345", y.String())
}

func TestGob(t *testing.T) {
	for _, s := range marshTestValues {
		x := MustParse(s)

		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(x))
		var y Numeric
		require.NoError(t, gob.NewDecoder(&buf).Decode(&y))

		assert.Zero(t, x.Cmp(y), "gob round trip of %q", s)
		assert.Equal(t, x.String(), y.String(), "gob round trip of %q", s)
	}

	// decoding a nil buffer yields the zero value
	var z Numeric
	require.NoError(t, z.GobDecode(nil))
	assert.True(t, z.IsZero())

	assert.Error(t, z.GobDecode([]byte{99, '1'}))
}

func TestSQL(t *testing.T) {
	v, err := MustParse("-12.345").Value()
	require.NoError(t, err)
	assert.Equal(t, "-12.345", v)

	var z Numeric
	require.NoError(t, z.Scan("12.5"))
	assert.Equal(t, "12.5", z.String())
	require.NoError(t, z.Scan([]byte("-0.25")))
	assert.Equal(t, "-0.25", z.String())
	require.NoError(t, z.Scan(int64(42)))
	assert.Equal(t, "42", z.String())
	require.NoError(t, z.Scan(float64(2.5)))
	assert.Equal(t, "2.5", z.String())
	assert.Error(t, z.Scan(true))
}
