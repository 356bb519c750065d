package strnum

import (
	"database/sql/driver"
	"strconv"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`
	JSONModeString = iota
	// JSONModeNumber produces values as json numbers, like `1234.5678`.
	// Some decoders will lose precision for such numbers.
	JSONModeNumber
)

func toJSON(s string, mode int) []byte {
	if mode == JSONModeNumber {
		return []byte(s)
	}
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	return append(b, '"')
}

// unquoteJSON returns a number from a json string or a json number.
// ok is false for a json null.
func unquoteJSON(data []byte) (s string, ok bool, err error) {
	if len(data) == 0 {
		return "", false, Error.New("empty json")
	}
	if string(data) == "null" {
		return "", false, nil
	}
	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return "", false, Error.New("unterminated json string %s", data)
		}
		data = data[1 : len(data)-1]
	}
	return string(data), true, nil
}

// MarshalJSON marshals value according to current JSONMode.
func (v Value) MarshalJSON() ([]byte, error) {
	return toJSON(v.String(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a number into a value.
// null leaves the value unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteJSON(data)
	if err != nil || !ok {
		return err
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	value, err := FromString(string(text))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalJSON marshals signed value according to current JSONMode.
func (s Signed) MarshalJSON() ([]byte, error) {
	return toJSON(s.String(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a number into a signed value.
// null leaves the value unchanged.
func (s *Signed) UnmarshalJSON(data []byte) error {
	str, ok, err := unquoteJSON(data)
	if err != nil || !ok {
		return err
	}
	value, err := SignedFromString(str)
	if err != nil {
		return err
	}
	*s = value
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Signed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signed) UnmarshalText(text []byte) error {
	value, err := SignedFromString(string(text))
	if err != nil {
		return err
	}
	*s = value
	return nil
}

// Scan implements sql.Scanner.
// It accepts strings, byte slices, integers and floats.
func (s *Signed) Scan(src interface{}) error {
	var str string
	switch v := src.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	case int64:
		str = strconv.FormatInt(v, 10)
	case float64:
		str = strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return Error.New("cannot scan NULL into Signed")
	default:
		return Error.New("cannot scan %T into Signed", src)
	}
	value, err := SignedFromString(str)
	if err != nil {
		return err
	}
	*s = value
	return nil
}

// Value implements driver.Valuer. Values are stored as strings.
func (s Signed) Value() (driver.Value, error) {
	return s.String(), nil
}
