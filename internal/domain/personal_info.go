package domain

import (
	"strings"
	"time"
)

// PersonalInfo holds the athlete's name and birth date. Immutable value
// object; updates construct a new value via NewPersonalInfo.
type PersonalInfo struct {
	Name      string
	BirthDate time.Time // date component only, UTC midnight
}

// NewPersonalInfo validates and normalizes the athlete's personal data.
// The caller supplies "today" explicitly so the future-date check is
// deterministic under test; production code passes time.Now().
func NewPersonalInfo(name string, birthDate, today time.Time) (PersonalInfo, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return PersonalInfo{}, newValidationError("name cannot be empty")
	}
	if len(trimmed) > 100 {
		return PersonalInfo{}, newValidationError("name cannot exceed 100 characters")
	}

	birth := truncateToDay(birthDate)
	if birth.After(truncateToDay(today)) {
		return PersonalInfo{}, newValidationError("birth date cannot be in the future")
	}

	return PersonalInfo{Name: trimmed, BirthDate: birth}, nil
}

// Age returns the athlete's age in whole years as of the given date,
// decremented when the birthday has not yet occurred that year.
func (p PersonalInfo) Age(today time.Time) int {
	now := truncateToDay(today)
	age := now.Year() - p.BirthDate.Year()

	anniversary := time.Date(p.BirthDate.Year()+age, p.BirthDate.Month(), p.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(now) {
		age--
	}

	return age
}

// truncateToDay drops the time-of-day component, keeping a UTC calendar date.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
