// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Numerics.

package numeric

import (
	"database/sql/driver"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const numericGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The value is
// encoded in its decimal text form, which carries the display scale
// exactly.
func (x Numeric) GobEncode() ([]byte, error) {
	buf := make([]byte, 1, 16)
	buf[0] = numericGobVersion
	return append(buf, x.String()...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Numeric) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Numeric{}
		return nil
	}
	if buf[0] != numericGobVersion {
		return fmt.Errorf("Numeric.GobDecode: encoding version %d not supported", buf[0])
	}
	v, err := Parse(string(buf[1:]))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Numeric) MarshalText() (text []byte, err error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Numeric) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("numeric: cannot unmarshal %q into a Numeric (%v)", text, err)
	}
	*z = v
	return nil
}

// Value implements the driver.Valuer interface. The value is its decimal
// text form.
func (x Numeric) Value() (driver.Value, error) {
	return x.String(), nil
}

// Scan implements the sql.Scanner interface. It accepts the string,
// []byte, int64 and float64 representations commonly returned for
// NUMERIC columns.
func (z *Numeric) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*z, err = Parse(value)
	case []byte:
		*z, err = Parse(string(value))
	case int64:
		*z = NewFromInt64(value)
	case float64:
		*z, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("numeric: failed to convert %[1]v of type %[1]T to Numeric", value)
	}
	return err
}
