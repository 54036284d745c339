package dto

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalJSON renders the zero date as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, string(b))
	if err != nil {
		return fmt.Errorf("date must use the %s layout", DateLayout)
	}
	d.Time = t
	return nil
}

// DatePtr unwraps an optional date.
func DatePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// Audit carries the bookkeeping fields every record exposes.
type Audit struct {
	ID           string    `json:"uid"`
	CreatedBy    string    `json:"created_by"`
	ModifiedBy   string    `json:"modified_by"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// List is the read-many body.
type List[T any] struct {
	Count  int `json:"count"`
	Result []T `json:"result"`
}

// NewList converts items with fn.
func NewList[S, T any](items []S, fn func(*S) T) List[T] {
	result := make([]T, 0, len(items))
	for i := range items {
		result = append(result, fn(&items[i]))
	}
	return List[T]{Count: len(result), Result: result}
}
