package dates

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by Formats.Get for a name that is not one of
// the five date types.
var ErrUnknownType = errors.New("unknown date type")

// InvalidLocaleError is returned when a locale cannot be parsed or has no
// bundled CLDR data.
type InvalidLocaleError struct {
	Locale string
	Err    error
}

func (e *InvalidLocaleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid locale %q: %v", e.Locale, e.Err)
	}
	return fmt.Sprintf("invalid locale %q: not supported", e.Locale)
}

func (e *InvalidLocaleError) Unwrap() error {
	return e.Err
}

// InvalidTimezoneError is returned when a time zone is not a tz database name.
type InvalidTimezoneError struct {
	TimeZone string
	Err      error
}

func (e *InvalidTimezoneError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid time zone %q: %v", e.TimeZone, e.Err)
	}
	return fmt.Sprintf("invalid time zone %q", e.TimeZone)
}

func (e *InvalidTimezoneError) Unwrap() error {
	return e.Err
}
