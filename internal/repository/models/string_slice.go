package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice stores a list of strings as a JSON array in a TEXT column.
type StringSlice []string

// Value implements the driver.Valuer interface. nil is stored as "[]".
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface. NULL, "" and "null" all scan to an empty slice.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return fmt.Errorf("StringSlice Scan: unsupported type %T", value)
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(bytesToParse, &out); err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*s = out
	return nil
}
