// Copyright 2020 Aleksandr Demakin. All rights reserved.

package twofloat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeWords
)

const (
	// JSONModeWords marshals both words, like `{"hi":1,"lo":-1e-200}`.
	// Round-trips exactly.
	JSONModeWords = iota
	// JSONModeFloat marshals values as a single float, like `1234.5678`,
	// dropping the low word's extra precision.
	JSONModeFloat
)

var (
	jsonParts = []string{`{"hi":`, `,"lo":`, `}`}

	errNonFinite = fmt.Errorf("non-finite value")
	errOverlap   = fmt.Errorf("words overlap")
)

// MarshalJSON marshals value according to current JSONMode.
// Values with infinite or NaN words have no json representation
// and produce an error.
func (t TwoFloat) MarshalJSON() ([]byte, error) {
	if !isFinite(t.hi) || !isFinite(t.lo) {
		return nil, errNonFinite
	}
	if JSONMode == JSONModeFloat {
		return []byte(strconv.FormatFloat(t.Float64(), 'g', -1, 64)), nil
	}
	var builder strings.Builder
	builder.WriteString(jsonParts[0])
	builder.WriteString(strconv.FormatFloat(t.hi, 'g', -1, 64))
	builder.WriteString(jsonParts[1])
	builder.WriteString(strconv.FormatFloat(t.lo, 'g', -1, 64))
	builder.WriteString(jsonParts[2])
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals an object with both words, or a plain float,
// into a value. A pair whose words overlap is rejected.
func (t *TwoFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			Hi float64
			Lo float64
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		if !NoOverlap(d.Hi, d.Lo) {
			return errOverlap
		}
		*t = TwoFloat{hi: d.Hi, lo: d.Lo}
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*t = FromFloat64(f)
	}
	return nil
}
