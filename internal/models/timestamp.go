package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Timestamp is the upstream seconds + nanoseconds time structure.
type Timestamp struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds"`
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, t.Nanoseconds).UTC()
}

// Unix returns the timestamp as fractional seconds since the epoch.
func (t Timestamp) Unix() float64 {
	return float64(t.Seconds) + float64(t.Nanoseconds)/1e9
}

// DateLayout is the canonical form of every Date.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Date is a calendar field that the upstream sends either as epoch
// milliseconds or as an ISO-8601 string. It always holds the string form.
type Date string

var errDateShape = errors.New("expected epoch milliseconds or ISO-8601 string")

// DateFromMillis converts epoch milliseconds to a Date.
func DateFromMillis(ms int64) Date {
	return Date(time.UnixMilli(ms).UTC().Format(DateLayout))
}

// NormalizeDate converts a decoded JSON value into a Date. Numbers are
// treated as epoch milliseconds; strings pass through unchanged.
func NormalizeDate(raw any) (Date, error) {
	switch v := raw.(type) {
	case string:
		return Date(v), nil
	case float64:
		if v != math.Trunc(v) {
			return "", fmt.Errorf("epoch milliseconds must be whole, got %v", v)
		}
		return DateFromMillis(int64(v)), nil
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return "", fmt.Errorf("epoch milliseconds must be whole, got %s", v)
		}
		return DateFromMillis(ms), nil
	}
	return "", errDateShape
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	nd, err := NormalizeDate(raw)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Time parses the date. Strings the upstream sent in a form other than
// RFC 3339 report an error.
func (d Date) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, string(d))
}

func (d Date) String() string { return string(d) }
