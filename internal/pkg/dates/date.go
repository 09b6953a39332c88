package dates

import (
	"encoding/json"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Date is a calendar date without a time-of-day component. All schedule
// arithmetic in the engine happens on this type so that timezone offsets
// can never shift a computed date by a day. Internally the date is pinned
// to midnight UTC.
type Date struct {
	t time.Time
}

// New returns the date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates an instant to its calendar date, dropping the
// time-of-day and timezone of the original value.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// Parse parses a date in "YYYY-MM-DD" format.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.t.AddDate(0, 0, n))
}

// AddYears returns the date n calendar years after d.
func (d Date) AddYears(n int) Date {
	return FromTime(d.t.AddDate(n, 0, 0))
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	return d.t.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
