package models

import (
	"fmt"
	"time"
)

// MinuteLayout is the canonical wire format for trade timestamps.
// Seconds and finer precision are not part of the data model.
const MinuteLayout = "2006-01-02T15:04"

// MinuteTime is a date-time carried at minute precision.
//
// It wraps time.Time so the rest of the code can compare and store it
// normally, while JSON and String rendering always use MinuteLayout. Values
// constructed through ParseMinute or TruncateMinute are guaranteed to have
// zero seconds and nanoseconds.
type MinuteTime struct {
	time.Time
}

// ParseMinute parses s in the canonical minute-precision format.
func ParseMinute(s string) (MinuteTime, error) {
	t, err := time.Parse(MinuteLayout, s)
	if err != nil {
		return MinuteTime{}, err
	}
	return MinuteTime{t}, nil
}

// TruncateMinute converts an arbitrary time to minute precision.
func TruncateMinute(t time.Time) MinuteTime {
	return MinuteTime{t.Truncate(time.Minute)}
}

// String renders the canonical minute-precision form.
func (m MinuteTime) String() string {
	return m.Format(MinuteLayout)
}

// MarshalJSON renders the timestamp as a MinuteLayout string.
func (m MinuteTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.Format(MinuteLayout))), nil
}

// UnmarshalJSON accepts only the canonical MinuteLayout string.
func (m *MinuteTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("minute timestamp must be a JSON string, got %s", s)
	}
	t, err := time.Parse(MinuteLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	m.Time = t
	return nil
}
