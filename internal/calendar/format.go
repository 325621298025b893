package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Formatter supplies locale-specific names for labels and grid headers.
type Formatter interface {
	MonthName(m time.Month) string
	WeekdayShort(d time.Weekday) string
}

type tableFormatter struct {
	months   [12]string
	weekdays [7]string // Sunday first, matching time.Weekday
}

func (f tableFormatter) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return f.months[m-1]
}

func (f tableFormatter) WeekdayShort(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return d.String()
	}
	return f.weekdays[d]
}

// English is the default formatter.
var English Formatter = tableFormatter{
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// French uses lowercase month names as French typography does.
var French Formatter = tableFormatter{
	months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
}

// FormatterFor returns the formatter for a locale code ("en" or "fr").
func FormatterFor(locale string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "en":
		return English, nil
	case "fr":
		return French, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
}
