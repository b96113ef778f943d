// internal/app/system/numeric/numeric.go
//
// Package numeric is the single place where marks/score inputs are coerced.
// Clients historically send marks both as JSON numbers and as numeric
// strings ("87"); that leniency is intentional and ends here. Anything that
// does not parse to a finite number is rejected.
package numeric

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is returned for input that cannot be coerced to a finite
// number (including NaN and ±Inf).
var ErrNotANumber = errors.New("value is not a finite number")

// ErrMissing is returned when the field was absent from the request body.
var ErrMissing = errors.New("value is missing")

// ParseJSON coerces a raw JSON value (number, or string containing a
// number) to a finite float64. A nil/empty raw value means the field was
// absent and yields ErrMissing.
func ParseJSON(raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, ErrMissing
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&n); err == nil {
		return ParseString(n.String())
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return ParseString(s)
	}

	return 0, ErrNotANumber
}

// ParseString coerces a decimal string to a finite float64.
func ParseString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissing
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return f, nil
}
