package civil

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a date range runs backwards.
var ErrInvalidRange = errors.New("end date before start date")

// Date is a timezone-free calendar date. It is never converted to a
// timestamp: the same (year, month, day) triple travels from the wire to
// storage and back unchanged.
type Date struct {
	Year  int
	Month int
	Day   int
}

// digits parses s as an unsigned decimal number. Every byte must be an
// ASCII digit; no sign, whitespace, or trailing garbage.
func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// ParseDate parses a YYYY-MM-DD string and rejects impossible dates
// such as 2024-02-30.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	year, okYear := digits(s[:4])
	month, okMonth := digits(s[5:7])
	day, okDay := digits(s[8:10])
	if !okYear || !okMonth || !okDay {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", s)
	}
	return d, nil
}

// IsValidDate reports whether s is a well-formed, real calendar date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysIn(d.Year, d.Month)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	if d.Day < daysIn(d.Year, d.Month) {
		d.Day++
		return d
	}
	d.Day = 1
	if d.Month < 12 {
		d.Month++
		return d
	}
	d.Month = 1
	d.Year++
	return d
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return d.Month - other.Month
	default:
		return d.Day - other.Day
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// DateRange returns every date from start to end inclusive, ascending.
func DateRange(start, end Date) ([]Date, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var dates []Date
	for d := start; !d.After(end); d = d.Next() {
		dates = append(dates, d)
	}
	return dates, nil
}

// --------------------------------------------------
// Wire format (JSON)
// --------------------------------------------------

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// --------------------------------------------------
// Storage format (DATE column)
// --------------------------------------------------

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case string:
		// Some drivers return DATE columns with a time suffix.
		if len(v) > 10 && (v[10] == 'T' || v[10] == ' ') {
			v = v[:10]
		}
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		// Drivers hand DATE columns back as midnight timestamps. Only the
		// calendar triple is kept; the location is deliberately ignored.
		*d = Date{Year: v.Year(), Month: int(v.Month()), Day: v.Day()}
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into civil.Date", src)
	}
}

// GormDataType maps Date to a plain DATE column.
func (Date) GormDataType() string {
	return "date"
}
