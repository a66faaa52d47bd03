package reports

import (
	"time"

	"github.com/agisilaos/gtd-cli/internal/api"
)

// summaryWindowDays is the forward window when the criteria does not name
// today; a today summary collapses to the single current day.
const summaryWindowDays = 22

type SummaryRow struct {
	Label    string `json:"label"`
	Starting int    `json:"starting"`
	Due      int    `json:"due"`
}

// Summary produces per-day start/due counts for the fetched tasks. The
// unscheduled row leads when any task mapped to that bucket; calendar rows
// then run forward from today, zero-filled for quiet days. The criteria is
// the user's original text: its today token picks the one-day window.
func Summary(tasks []api.Task, criteria string, today time.Time) ([]SummaryRow, error) {
	if tasks == nil {
		return nil, ErrNilTasks
	}
	counts := CountByBucket(tasks, today)

	var rows []SummaryRow
	_, hasStart := counts.Starting[BucketUnscheduled]
	_, hasDue := counts.Due[BucketUnscheduled]
	if hasStart || hasDue {
		rows = append(rows, SummaryRow{
			Label:    BucketUnscheduled,
			Starting: counts.Starting[BucketUnscheduled],
			Due:      counts.Due[BucketUnscheduled],
		})
	}

	days := summaryWindowDays
	if HasToday(criteria) {
		days = 1
	}
	day := dayOf(today)
	for i := 0; i < days; i++ {
		d := day.AddDate(0, 0, i)
		key := d.Format(dayLayout)
		rows = append(rows, SummaryRow{
			Label:    DayLabel(d),
			Starting: counts.Starting[key],
			Due:      counts.Due[key],
		})
	}
	return rows, nil
}
