package service

import (
	"time"

	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
)

const dayFormat = "2006-01-02"

// parseDay parses a calendar date in YYYY-MM-DD form.
func parseDay(raw string) (time.Time, error) {
	day, err := time.Parse(dayFormat, raw)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date, expected YYYY-MM-DD")
	}
	return day, nil
}

// resolveDay returns the parsed date or today (UTC, midnight) when absent.
func resolveDay(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseDay(*raw)
}

// clampProgress bounds a progress percentage into [0,100] without error.
func clampProgress(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
