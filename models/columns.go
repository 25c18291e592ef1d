package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The original SQLite schema keeps list-valued product fields as JSON text
// columns. These types transparently (de)serialize them so callers always see
// structured slices, never the stored string.

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l, func() { *l = StringList{} })
}

type ReviewList []Review

func (l ReviewList) Value() (driver.Value, error) {
	if l == nil {
		l = ReviewList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ReviewList) Scan(src interface{}) error {
	return scanJSON(src, l, func() { *l = ReviewList{} })
}

// CartList holds product snapshots on a session, mirroring the shape the
// storefront keeps in memory.
type CartList []Product

func (l CartList) Value() (driver.Value, error) {
	if l == nil {
		l = CartList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *CartList) Scan(src interface{}) error {
	return scanJSON(src, l, func() { *l = CartList{} })
}

func scanJSON(src, dest interface{}, reset func()) error {
	switch v := src.(type) {
	case nil:
		reset()
		return nil
	case []byte:
		if len(v) == 0 {
			reset()
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			reset()
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
