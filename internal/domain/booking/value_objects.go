package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
)

// TimeSlot is a half-open interval [from, to).
type TimeSlot struct {
	from time.Time
	to   time.Time
}

func NewTimeSlot(from, to time.Time) (TimeSlot, error) {
	if !from.Before(to) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{from: from, to: to}, nil
}

func (ts TimeSlot) From() time.Time {
	return ts.from
}

func (ts TimeSlot) To() time.Time {
	return ts.to
}

func (ts TimeSlot) IsZero() bool {
	return ts.from.IsZero() && ts.to.IsZero()
}

// Overlaps reports whether two half-open intervals share any instant.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.from.Before(other.to) && other.from.Before(ts.to)
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.to.Sub(ts.from)
}

// Hours is the billable hour count: partial hours round up.
func (ts TimeSlot) Hours() int64 {
	d := ts.Duration()
	hours := d / time.Hour
	if d%time.Hour != 0 {
		hours++
	}
	return int64(hours)
}

// Minutes is the billable duration in minutes (whole hours times 60).
func (ts TimeSlot) Minutes() int64 {
	return ts.Hours() * 60
}

// ToTstzrange renders the slot in Postgres range literal form.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.from.Format(time.RFC3339), ts.to.Format(time.RFC3339))
}

// Money is an amount in whole currency units.
type Money struct {
	units int64
}

func NewMoney(units int64) (Money, error) {
	if units < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{units: units}, nil
}

func (m Money) Units() int64 {
	return m.units
}

func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}
