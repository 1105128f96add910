package services

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got '%s'", ErrValidation, field, value)
	}
	return parsed, nil
}

// parseDateRange parses an inclusive [from, to] date pair and rejects
// ranges where from is after to.
func parseDateRange(fromValue, toValue string) (time.Time, time.Time, error) {
	from, err := parseDate("from_date", fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate("to_date", toValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, fromValue, toValue)
	}
	return from, to, nil
}
