package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts YYYY-MM-DD and RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return fmt.Errorf("date must be formatted as YYYY-MM-DD: %w", err)
		}
		t = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case []byte:
		return d.Scan(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}
