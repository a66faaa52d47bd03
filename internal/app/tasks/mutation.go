// Package tasks computes the write-back values for task mutations. The
// remote layer performs the actual full-record replacement; these helpers
// only decide what the replaced record looks like.
package tasks

import (
	"fmt"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/api"
	"github.com/agisilaos/gtd-cli/internal/app/reports"
)

// Close returns the task marked done. No other field changes.
func Close(task api.Task) api.Task {
	task.Status = api.StatusDone
	return task
}

// Postpone returns the task with its start date moved. Accepted values are
// ISO YYYY-MM-DD dates and the someday/never sentinels; anything else is a
// usage error surfaced before any remote call happens.
func Postpone(task api.Task, date string) (api.Task, error) {
	normalized, err := NormalizeDate(date)
	if err != nil {
		return api.Task{}, err
	}
	task.StartDate = normalized
	return task, nil
}

// NormalizeDate validates a user-supplied date for create/postpone payloads.
// The empty string is allowed and means unset.
func NormalizeDate(date string) (string, error) {
	trimmed := strings.TrimSpace(date)
	switch trimmed {
	case "", api.DateSomeday, api.DateNever:
		return trimmed, nil
	}
	if _, ok := reports.ParseDay(trimmed); !ok {
		return "", fmt.Errorf("invalid date %q; use YYYY-MM-DD, %q, or %q", date, api.DateSomeday, api.DateNever)
	}
	return trimmed, nil
}
