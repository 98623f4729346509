package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSlot = errors.New("invalid time slot")

// Slot is a bookable clinic time of day at minute granularity.
// The zero value is 00:00. Slots are comparable with == and usable
// as map keys.
type Slot struct {
	hour   int
	minute int
}

func New(hour, minute int) (Slot, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{hour: hour, minute: minute}, nil
}

// Parse accepts only the canonical zero-padded 24-hour "HH:MM" form.
func Parse(s string) (Slot, error) {
	if len(s) != 5 || s[2] != ':' {
		return Slot{}, ErrInvalidSlot
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return Slot{}, ErrInvalidSlot
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return New(h, m)
}

// FromTime takes the time-of-day part of t, dropping sub-minute
// precision.
func FromTime(t time.Time) Slot {
	return Slot{hour: t.Hour(), minute: t.Minute()}
}

func (s Slot) Hour() int   { return s.hour }
func (s Slot) Minute() int { return s.minute }

// String returns the canonical zero-padded "HH:MM" form.
func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

// Before reports whether s is chronologically earlier than o.
func (s Slot) Before(o Slot) bool {
	return s.hour*60+s.minute < o.hour*60+o.minute
}

func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Slot) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
