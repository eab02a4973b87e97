package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Attributes stores variant presentation attributes (color, container size)
// as a JSON column.
type Attributes map[string]string

// Value implements driver.Valuer.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = make(Attributes)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}
