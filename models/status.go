package models

import (
	"database/sql/driver"
	"fmt"
)

type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	return s == StatusValid || s == StatusInvalid
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusValid {
		return StatusInvalid
	}
	return StatusValid
}

// Marshal a `Status` to a `string` when saving to the database
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// Unmarshal an `interface{}` to a `Status` when reading from the database
func (s *Status) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = Status(v)
	case []byte:
		*s = Status(v)
	default:
		err := fmt.Errorf("%v-is-incompatible", value)
		helperLogger.Session("status-scan").Error("scan-switch", err)
		return err
	}
	return nil
}
