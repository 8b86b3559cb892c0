package edtf

import "errors"

// Text marshaling rides on the parse/format round trip: values serialize
// as their EDTF text, so they embed directly in JSON, YAML or XML
// documents without an adapter doing validation of its own.

var errZeroValue = errors.New("edtf: cannot marshal zero value")

// MarshalText implements encoding.TextMarshaler.
func (e Edtf) MarshalText() ([]byte, error) {
	if e.kind == 0 {
		return nil, errZeroValue
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edtf) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if d == (Date{}) {
		return nil, errZeroValue
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
