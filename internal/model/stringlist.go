package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON array in a
// single TEXT column. Several entities carry list-valued fields
// (Project.Technologies, Experience.Responsibilities, the homepage's
// featured ID lists) and SQLite has no native array type, so the list is
// serialized on the way in and parsed on the way out.
//
// Implementing sql.Scanner and driver.Valuer means the repository layer
// can pass a StringList straight to ExecContext/Scan like any other
// column value — no special casing per query.
type StringList []string

// Value serializes the list for storage. A nil list is stored as the
// empty JSON array rather than NULL so the columns can stay NOT NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("model: encoding string list: %w", err)
	}
	return string(b), nil
}

// Scan parses a stored JSON array back into the list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("model: cannot scan %T into StringList", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("model: decoding string list: %w", err)
	}
	*l = out
	return nil
}
