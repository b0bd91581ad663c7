package domain

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of birth dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format of birth times.
	ClockLayout = "15:04"
)

// ClockTime is a local wall-clock reading. The zero value means "not provided".
type ClockTime struct {
	Hour   int
	Minute int
	Set    bool
}

// ParseClock reads an HH:MM string; an empty string yields an unset clock.
func ParseClock(value string) (ClockTime, error) {
	if value == "" {
		return ClockTime{}, nil
	}
	parsed, err := time.Parse(ClockLayout, value)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of birth %q: %w", value, err)
	}
	return ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute(), Set: true}, nil
}

// String renders the clock as HH:MM, or "" when unset.
func (c ClockTime) String() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// BirthInput is the immutable subject of a calculation request.
type BirthInput struct {
	Name     string
	Pronouns string
	Date     time.Time
	Time     ClockTime
	Location string
}

// DateString renders the birth date as YYYY-MM-DD.
func (b BirthInput) DateString() string {
	if b.Date.IsZero() {
		return ""
	}
	return b.Date.Format(DateLayout)
}

// Instant combines date and clock time in UTC.
func (b BirthInput) Instant() time.Time {
	d := b.Date
	return time.Date(d.Year(), d.Month(), d.Day(), b.Time.Hour, b.Time.Minute, 0, 0, time.UTC)
}

// ParseBirthInput builds a BirthInput from form strings. The time of birth may be empty.
func ParseBirthInput(name, pronouns, dob, tob, location string) (BirthInput, error) {
	date, err := time.Parse(DateLayout, dob)
	if err != nil {
		return BirthInput{}, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}
	clock, err := ParseClock(tob)
	if err != nil {
		return BirthInput{}, err
	}
	return BirthInput{
		Name:     name,
		Pronouns: pronouns,
		Date:     date,
		Time:     clock,
		Location: location,
	}, nil
}
