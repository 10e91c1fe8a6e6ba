// Package format renders raw domain values as user-facing text: ordinal
// day numbers, recurrence sentences, calendar dates, and minor-unit
// amounts. All functions are pure and degrade to sentinel strings on bad
// input instead of returning errors.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hearth/internal/log"
)

// Sentinels returned by FormatDate. Callers render them verbatim.
const (
	DateNotSet  = "Date not set"
	InvalidDate = "Invalid date"
)

// DefaultDateLayout is long month name, numeric day, numeric year.
const DefaultDateLayout = "January 2, 2006"

// OrdinalSuffix returns n followed by its English ordinal suffix
// ("1st", "22nd", "13th"). The 11-13 band always takes "th", including
// 111-113 and so on. Negative numbers keep their sign; the suffix rule
// uses the absolute value.
func OrdinalSuffix(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	suffix := "th"
	if rem := abs % 100; rem < 11 || rem > 13 {
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// FrequencyPhrase maps a recurrence code to a prose phrase. Unrecognized
// codes pass through unchanged so new server-side frequencies render as
// themselves instead of failing.
func FrequencyPhrase(code string) string {
	switch code {
	case "monthly":
		return "each month"
	case "bi-monthly":
		return "every two months"
	case "quarterly":
		return "each quarter"
	case "semi-annually":
		return "twice a year"
	case "yearly":
		return "each year"
	default:
		return code
	}
}

// RecurrenceSentence renders a recurring item's schedule, e.g.
// RecurrenceSentence(19, "monthly") == "Due on the 19th each month".
func RecurrenceSentence(dayOfMonth int, frequencyCode string) string {
	return fmt.Sprintf("Due on the %s %s", OrdinalSuffix(dayOfMonth), FrequencyPhrase(frequencyCode))
}

// DateOption customizes FormatDate output.
type DateOption func(*dateOptions)

type dateOptions struct {
	layout string
}

// WithLayout overrides the display layout (a time.Format reference layout).
func WithLayout(layout string) DateOption {
	return func(o *dateOptions) {
		o.layout = layout
	}
}

// dateTimeLayouts are tried first, in order, against the raw input.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDate renders a date-time string for display.
//
// Empty or whitespace-only input yields DateNotSet. Input that parses as
// a date-time renders with the configured layout. Date-only input (no
// time-of-day component) is retried at midnight local time, so
// "2024-03-15" stays March 15 instead of shifting across a UTC boundary.
// Anything still unparseable yields InvalidDate; this function never
// returns an error. Bad input is logged at warn level as a diagnostic
// side channel only.
func FormatDate(input string, opts ...DateOption) string {
	o := dateOptions{layout: DefaultDateLayout}
	for _, opt := range opts {
		opt(&o)
	}

	s := strings.TrimSpace(input)
	if s == "" {
		return DateNotSet
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(o.layout)
		}
	}

	// No time-of-day component: interpret as local midnight.
	if !strings.Contains(s, ":") {
		if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return t.Format(o.layout)
		}
	}

	log.Default().WithComponent(log.ComponentFormat).Warn("Unparseable date input", "input", s)
	return InvalidDate
}

// FormatCents renders minor units as a currency string (e.g. "$1,234.56").
func FormatCents(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	rem := cents % 100
	s := "$" + groupThousands(whole) + "." + fmt.Sprintf("%02d", rem)
	if neg {
		return "-" + s
	}
	return s
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
