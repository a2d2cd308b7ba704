package reservation

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidSlotTime = errors.New("time must be HH:MM between 00:00 and 23:59")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidDuration = errors.New("duration must be a positive whole number of minutes")
)

// SlotTime is a wall-clock time of day with minute precision.
type SlotTime struct {
	minutes int
}

func NewSlotTime(hour, minute int) (SlotTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return SlotTime{minutes: hour*60 + minute}, nil
}

func ParseSlotTime(s string) (SlotTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return SlotTime{}, ErrInvalidSlotTime
	}
	h, ok := twoDigits(s[0:2])
	if !ok {
		return SlotTime{}, ErrInvalidSlotTime
	}
	m, ok := twoDigits(s[3:5])
	if !ok {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return NewSlotTime(h, m)
}

// MustSlotTime panics on malformed input. Intended for constants and tests.
func MustSlotTime(s string) SlotTime {
	st, err := ParseSlotTime(s)
	if err != nil {
		panic(err)
	}
	return st
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func (t SlotTime) Hour() int          { return t.minutes / 60 }
func (t SlotTime) Minute() int        { return t.minutes % 60 }
func (t SlotTime) SinceMidnight() int { return t.minutes }

func (t SlotTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Date is a calendar day anchored at midnight in the booking location.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day(), t.Location())
}

func ParseDate(s string, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time          { return d.t }
func (d Date) Location() *time.Location { return d.t.Location() }
func (d Date) IsZero() bool             { return d.t.IsZero() }
func (d Date) String() string           { return d.t.Format(DateLayout) }

func (d Date) Equal(other Date) bool {
	y1, m1, d1 := d.t.Date()
	y2, m2, d2 := other.t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// At combines the day with a time of day in the date's location.
func (d Date) At(st SlotTime) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), st.Hour(), st.Minute(), 0, 0, d.t.Location())
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Slot is the half-open interval [start, start+duration) within one day.
type Slot struct {
	start    SlotTime
	duration time.Duration
}

func NewSlot(start SlotTime, duration time.Duration) (Slot, error) {
	if duration <= 0 || duration%time.Minute != 0 {
		return Slot{}, ErrInvalidDuration
	}
	return Slot{start: start, duration: duration}, nil
}

func (s Slot) Start() SlotTime         { return s.start }
func (s Slot) Duration() time.Duration { return s.duration }
func (s Slot) startMinutes() int       { return s.start.SinceMidnight() }
func (s Slot) endMinutes() int         { return s.start.SinceMidnight() + int(s.duration/time.Minute) }

func (s Slot) Overlaps(other Slot) bool {
	return s.startMinutes() < other.endMinutes() && s.endMinutes() > other.startMinutes()
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled:
		return true
	default:
		return false
	}
}
