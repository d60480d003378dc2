package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date type names, as used by the "type" option.
const (
	TypeDate        = "date"
	TypeDatetime    = "datetime"
	TypeISODate     = "iso_date"
	TypeISODatetime = "iso_datetime"
	TypeTimeago     = "timeago"
)

// Types returns the five date type names in display order.
func Types() []string {
	return []string{TypeDate, TypeDatetime, TypeISODate, TypeISODatetime, TypeTimeago}
}

const (
	isoDateLayout     = "2006-01-02"
	clockLayout       = "15:04:05"
	isoDatetimeLayout = isoDateLayout + " " + clockLayout
	// numeric offset even for UTC, so the timeago script sees "+00:00"
	timeagoLayout = "2006-01-02T15:04:05-07:00"
)

// Formats holds the five renderings of one timestamp.
type Formats struct {
	Date        string `json:"date"`
	Datetime    string `json:"datetime"`
	ISODate     string `json:"iso_date"`
	ISODatetime string `json:"iso_datetime"`
	Timeago     string `json:"timeago"`
}

// Map returns the formats keyed by type name.
func (f Formats) Map() map[string]string {
	return map[string]string{
		TypeDate:        f.Date,
		TypeDatetime:    f.Datetime,
		TypeISODate:     f.ISODate,
		TypeISODatetime: f.ISODatetime,
		TypeTimeago:     f.Timeago,
	}
}

// Get returns the rendering for the named type.
func (f Formats) Get(typ string) (string, error) {
	v, ok := f.Map()[typ]
	if !ok {
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownType, typ, strings.Join(Types(), ", "))
	}
	return v, nil
}

// ValidateType reports whether typ names one of the five date types.
func ValidateType(typ string) error {
	_, err := Formats{}.Get(typ)
	return err
}

// Format renders the Unix timestamp ts for locale in the tz database zone timeZone.
func Format(ts int64, locale, timeZone string) (Formats, error) {
	trans, err := lookupLocale(locale)
	if err != nil {
		return Formats{}, err
	}

	loc, err := LoadTimezone(timeZone)
	if err != nil {
		return Formats{}, err
	}

	t := time.Unix(ts, 0).UTC().In(loc)
	long := trans.FmtDateLong(t)

	return Formats{
		Date:        long,
		Datetime:    long + " " + t.Format(clockLayout),
		ISODate:     t.Format(isoDateLayout),
		ISODatetime: t.Format(isoDatetimeLayout),
		Timeago:     fmt.Sprintf("<span class='timeago' datetime='%s' locale='%s'></span>", t.Format(timeagoLayout), locale),
	}, nil
}

// LoadTimezone resolves a tz database name. Unlike time.LoadLocation, an
// empty name is rejected instead of meaning UTC.
func LoadTimezone(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &InvalidTimezoneError{TimeZone: name, Err: errors.New("empty time zone")}
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &InvalidTimezoneError{TimeZone: name, Err: err}
	}
	return loc, nil
}
