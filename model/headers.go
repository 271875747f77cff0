// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Headers is a set of custom HTTP headers a subscriber wants attached to
// every delivery. It implements driver.Valuer/sql.Scanner so it can be
// stored as a single JSON column, the same convention the teacher uses for
// its webhook header type.
type Headers map[string]string

// Value implements driver.Valuer.
func (h Headers) Value() (driver.Value, error) {
	if len(h) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, accepting both Postgres jsonb and SQLite text
// column representations.
func (h *Headers) Scan(databaseValue interface{}) error {
	switch value := databaseValue.(type) {
	case string:
		if value == "" {
			*h = Headers{}
			return nil
		}
		return json.Unmarshal([]byte(value), h)
	case []byte:
		if len(value) == 0 {
			*h = Headers{}
			return nil
		}
		return json.Unmarshal(value, h)
	case nil:
		*h = Headers{}
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Headers", databaseValue)
	}
}

// StringSet is a JSON-encoded set of strings, used for subscriber event-type
// patterns. Stored the same way as Headers.
type StringSet []string

// Value implements driver.Valuer.
func (s StringSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringSet) Scan(databaseValue interface{}) error {
	switch value := databaseValue.(type) {
	case string:
		if value == "" {
			*s = nil
			return nil
		}
		return json.Unmarshal([]byte(value), s)
	case []byte:
		if len(value) == 0 {
			*s = nil
			return nil
		}
		return json.Unmarshal(value, s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into StringSet", databaseValue)
	}
}

// StringMap is a JSON-encoded map, used for Event.Changes and similar
// free-form payload fragments.
type StringMap map[string]interface{}

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(databaseValue interface{}) error {
	switch value := databaseValue.(type) {
	case string:
		if value == "" {
			*m = StringMap{}
			return nil
		}
		return json.Unmarshal([]byte(value), m)
	case []byte:
		if len(value) == 0 {
			*m = StringMap{}
			return nil
		}
		return json.Unmarshal(value, m)
	case nil:
		*m = StringMap{}
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into StringMap", databaseValue)
	}
}
