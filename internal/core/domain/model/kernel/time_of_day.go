package kernel

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

const (
	timeOfDayMinHour   = 0
	timeOfDayMaxHour   = 23
	timeOfDayMinMinute = 0
	timeOfDayMaxMinute = 59
)

// ErrTimeOfDayIsNotConstructed is returned when validating a zero-value TimeOfDay.
// Instances must be created via NewTimeOfDay or TimeOfDayFromMinutes.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay or TimeOfDayFromMinutes")

// TimeOfDay is an immutable wall-clock time without a date, used for order due
// times. The zero value is invalid and fails validation; use the constructors.
//
// Example:
//
//	due, err := kernel.NewTimeOfDay(8, 0)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(due) // Output: 08:00
type TimeOfDay struct { //nolint:recvcheck //using for validation
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewTimeOfDay creates a TimeOfDay from an hour in [0..23] and a minute in [0..59].
// Returns an out-of-range error if either component is outside its bounds.
func NewTimeOfDay(hour int, minute int) (TimeOfDay, error) {
	t := TimeOfDay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(t.setHour(hour), t.setMinute(minute)); err != nil {
		return TimeOfDay{}, err
	}

	return t, nil
}

// TimeOfDayFromMinutes creates a TimeOfDay from minutes since midnight in [0..1439].
// Used when rehydrating due times stored as a single integer column.
func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > timeOfDayMaxHour*60+timeOfDayMaxMinute {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError(
			"minutes since midnight", minutes, 0, timeOfDayMaxHour*60+timeOfDayMaxMinute)
	}
	return NewTimeOfDay(minutes/60, minutes%60)
}

// Validate checks that the TimeOfDay was created through a constructor.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// Hour returns the hour component in [0..23].
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component in [0..59].
func (t TimeOfDay) Minute() int {
	return t.minute
}

// Minutes returns the time as minutes since midnight, the persistence form.
func (t TimeOfDay) Minutes() int {
	return t.hour*60 + t.minute
}

// At anchors the time of day on the given calendar date, in that date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.hour, t.minute, 0, 0, date.Location())
}

// IsEqual reports whether both values represent the same wall-clock time.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// String returns the time formatted as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t *TimeOfDay) setHour(hour int) error {
	if hour < timeOfDayMinHour || hour > timeOfDayMaxHour {
		return errs.NewValueIsOutOfRangeError("hour", hour, timeOfDayMinHour, timeOfDayMaxHour)
	}
	t.hour = hour
	return nil
}

func (t *TimeOfDay) setMinute(minute int) error {
	if minute < timeOfDayMinMinute || minute > timeOfDayMaxMinute {
		return errs.NewValueIsOutOfRangeError("minute", minute, timeOfDayMinMinute, timeOfDayMaxMinute)
	}
	t.minute = minute
	return nil
}
