package reports

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agisilaos/gtd-cli/internal/api"
)

const defaultWindowDays = 7

type OverviewDay struct {
	Label  string   `json:"label"`
	Titles []string `json:"titles"`
}

// WindowDays parses the overview's day-count argument, falling back to the
// default when the input is not a positive integer.
func WindowDays(arg string) int {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return defaultWindowDays
	}
	return n
}

// Overview lays the tasks out over the days [today, today+windowDays). A
// task shows on a day unless it is entirely undated, due someday, already
// past due before that day, or not yet started by that day. Titles within a
// day are sorted lexicographically; this is the one report that re-sorts.
func Overview(windowDays int, tasks []api.Task, today time.Time) ([]OverviewDay, error) {
	if tasks == nil {
		return nil, ErrNilTasks
	}
	day := dayOf(today)
	out := make([]OverviewDay, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		d := day.AddDate(0, 0, i)
		var titles []string
		for _, task := range tasks {
			if includeOnDay(task, d) {
				titles = append(titles, task.Title)
			}
		}
		sort.Strings(titles)
		out = append(out, OverviewDay{Label: DayLabel(d), Titles: titles})
	}
	return out, nil
}

func includeOnDay(task api.Task, day time.Time) bool {
	if task.StartDate == "" && task.DueDate == "" {
		return false
	}
	if task.DueDate == api.DateSomeday {
		return false
	}
	if due, ok := ParseDay(task.DueDate); ok && due.Before(day) {
		return false
	}
	if start, ok := ParseDay(task.StartDate); ok && start.After(day) {
		return false
	}
	return true
}
