// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// MustParse is like Parse but panics on error. It simplifies the safe
// initialization of global variables holding Numerics.
func MustParse(s string) Numeric {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustParseExact is like ParseExact but panics on error.
func MustParseExact(s string, precision, scale int) Numeric {
	n, err := ParseExact(s, precision, scale)
	if err != nil {
		panic(err)
	}
	return n
}
