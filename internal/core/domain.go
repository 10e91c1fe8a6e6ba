package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Monthly      Frequency = "monthly"
	BiMonthly    Frequency = "bi-monthly"
	Quarterly    Frequency = "quarterly"
	SemiAnnually Frequency = "semi-annually"
	Yearly       Frequency = "yearly"
)

const (
	SplitEqual   SplitMode = "equal"
	SplitPercent SplitMode = "percent"
	SplitFixed   SplitMode = "fixed"
)

type (
	// Frequency is how often a recurring item generates a dated instance.
	Frequency string

	// SplitMode says how an amount is divided across members. The server
	// owns the interpretation; the client only validates membership in
	// the known set.
	SplitMode string

	// Date is a calendar day at midnight UTC. Schedule math trades in
	// Dates; wall-clock precision never matters client-side.
	Date struct {
		time.Time
	}

	// Money is a monetary amount in integer minor units ("cents"),
	// avoiding floating-point rounding in arithmetic.
	Money struct {
		Cents int64
	}
)

var (
	ErrInvalidDay       = errors.New("invalid day of month")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidSplitMode = errors.New("invalid split mode")
	ErrEmptyName        = errors.New("empty name")
)

// Frequencies lists the recurrence codes the backend understands, in
// shortest-period-first order.
func Frequencies() []Frequency {
	return []Frequency{Monthly, BiMonthly, Quarterly, SemiAnnually, Yearly}
}

func (f Frequency) Validate() error {
	switch f {
	case Monthly, BiMonthly, Quarterly, SemiAnnually, Yearly:
		return nil
	default:
		return ErrInvalidFrequency
	}
}

func (m SplitMode) Validate() error {
	switch m {
	case SplitEqual, SplitPercent, SplitFixed:
		return nil
	default:
		return ErrInvalidSplitMode
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDayOfMonth checks a recurring item's due day. Days 29-31 are
// accepted; short months clamp at schedule time, not here.
func ValidateDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	return nil
}

// ValidateName checks a user-supplied entity name.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return ErrEmptyName
	}
	if len(name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	return nil
}

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}
