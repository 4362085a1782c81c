// --- File: pkg/notification/schedule.go ---
package notification

import "fmt"

// TimeOfDay is a wall-clock time used by the daily and weekly repeat
// operations. The native side computes the next occurrence in the device's
// local timezone.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// NewTimeOfDay builds a validated TimeOfDay.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute, Second: second}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Validate checks hour, minute and second against their wall-clock ranges.
// An invalid value is a caller error and fails before any native traffic.
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidTimeOfDay, t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidTimeOfDay, t.Minute)
	}
	if t.Second < 0 || t.Second > 59 {
		return fmt.Errorf("%w: second %d", ErrInvalidTimeOfDay, t.Second)
	}
	return nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Day is a day of the week as the native schedulers count them: 1=Sunday
// through 7=Saturday. The numbering is fixed by the wire contract and is
// deliberately unrelated to ISO 8601 or time.Weekday.
type Day int

const (
	Sunday Day = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Valid reports whether d is one of the seven known values.
func (d Day) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d-Sunday]
}

// RepeatInterval selects how often a periodically shown notification fires.
// It is serialized as its ordinal position, so the constant order is part of
// the wire contract and must not change.
type RepeatInterval int

const (
	EveryMinute RepeatInterval = iota
	Hourly
	Daily
	Weekly
)

var repeatIntervalNames = [...]string{"EveryMinute", "Hourly", "Daily", "Weekly"}

// Valid reports whether r is one of the known intervals.
func (r RepeatInterval) Valid() bool {
	return r >= EveryMinute && r <= Weekly
}

func (r RepeatInterval) String() string {
	if !r.Valid() {
		return fmt.Sprintf("RepeatInterval(%d)", int(r))
	}
	return repeatIntervalNames[r]
}
