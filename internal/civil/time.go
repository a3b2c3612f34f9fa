package civil

import (
	"database/sql/driver"
	"fmt"
	stdtime "time"
)

// Time is a timezone-free time of day with minute precision.
type Time struct {
	Hour   int
	Minute int
}

// ParseTime parses an HH:MM (24-hour) string. Seconds and offsets are
// rejected on input but tolerated when scanning TIME columns.
func ParseTime(s string) (Time, error) {
	if len(s) != 5 || s[2] != ':' {
		return Time{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	hour, okHour := digits(s[:2])
	minute, okMinute := digits(s[3:5])
	if !okHour || !okMinute {
		return Time{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}

	if hour > 23 || minute > 59 {
		return Time{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return Time{Hour: hour, Minute: minute}, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t Time) Before(other Time) bool {
	return t.Minutes() < other.Minutes()
}

// Add returns the time total minutes later, with minutes carried into
// hours and hours wrapped modulo 24. wrapped reports that the result
// crossed midnight.
func (t Time) Add(minutes int) (end Time, wrapped bool) {
	total := t.Minutes() + minutes
	end = Time{Hour: (total / 60) % 24, Minute: total % 60}
	return end, total >= 24*60
}

// --------------------------------------------------
// Wire format (JSON)
// --------------------------------------------------

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid time literal %s", b)
	}
	parsed, err := ParseTime(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// --------------------------------------------------
// Storage format (TIME column)
// --------------------------------------------------

func (t Time) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case string:
		// TIME columns often come back as HH:MM:SS.
		if len(v) > 5 {
			v = v[:5]
		}
		parsed, err := ParseTime(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case stdtime.Time:
		*t = Time{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	case nil:
		*t = Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into civil.Time", src)
	}
}

// GormDataType maps Time to a plain TIME column.
func (Time) GormDataType() string {
	return "time"
}
