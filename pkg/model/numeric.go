package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NumericString holds a number sent either as a JSON number or as a JSON string.
// Number literals keep their exact text, so wei-sized integers survive decoding.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or a numeric string: %w", err)
	}
	*n = NumericString(num)
	return nil
}
