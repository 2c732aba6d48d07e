package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RawValue holds a numeric request field that may arrive as a JSON number or
// as a numeric string. Parsing is deferred so that every field can be checked
// and reported together.
type RawValue struct {
	text string
	set  bool
}

// Number returns a RawValue holding f.
func Number(f float64) RawValue {
	return RawValue{text: strconv.FormatFloat(f, 'g', -1, 64), set: true}
}

// String returns a RawValue holding s verbatim.
func String(s string) RawValue {
	return RawValue{text: s, set: true}
}

// IsSet reports whether the field was present and not null.
func (v RawValue) IsSet() bool {
	return v.set
}

// Float parses the value as a finite number.
func (v RawValue) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", v.text, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parse %q: not a finite number", v.text)
	}
	return f, nil
}

func (v RawValue) String() string {
	return v.text
}

// UnmarshalJSON accepts any JSON value. Strings are unquoted, null leaves the
// value unset and everything else is kept as raw text for Float to reject.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = RawValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	}
	*v = RawValue{text: string(data), set: true}
	return nil
}

// MarshalJSON writes numbers as JSON numbers and anything else as a string.
func (v RawValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if _, err := v.Float(); err == nil && json.Valid([]byte(v.text)) {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}
