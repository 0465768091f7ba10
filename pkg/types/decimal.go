package types

import (
	"bytes"
	"strconv"
)

// Decimal keeps currency and percentage values in their exact text form so
// they never pass through float64 on the way to storage or back. It accepts
// both JSON numbers and JSON strings on input and always serializes as a
// JSON string.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	*d = Decimal(data)
	return nil
}

func (d Decimal) String() string { return string(d) }

func (d Decimal) Float64() (float64, error) {
	return strconv.ParseFloat(string(d), 64)
}
