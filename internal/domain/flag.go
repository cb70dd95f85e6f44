package domain

import (
	"bytes"
	"fmt"
)

// Flag is a boolean that the backend serializes as 0/1 in some responses and as a
// JSON bool in others.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("1")), bytes.Equal(data, []byte("true")):
		*f = true
	case bytes.Equal(data, []byte("0")), bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*f = false
	default:
		return fmt.Errorf("invalid flag value: %s", data)
	}
	return nil
}
