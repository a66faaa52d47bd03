package reports

import (
	"errors"
	"strings"

	"github.com/agisilaos/gtd-cli/internal/api"
)

// ErrNilTasks is the core's one shape error: report transforms accept empty
// collections but refuse a nil one outright rather than producing a report
// that silently means nothing.
var ErrNilTasks = errors.New("reports: invalid input: nil task collection")

type ListingRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListingGroup is one display group. Header is the tag without its marker;
// it is empty for the no-tag group, which renders without a header line.
type ListingGroup struct {
	Header string       `json:"header"`
	Rows   []ListingRow `json:"rows"`
}

// Listing groups tasks by tag for display, ordered by the explicit tag
// filters in filterTokens when present and lexicographically otherwise.
func Listing(tasks []api.Task, filterTokens []string) ([]ListingGroup, error) {
	if tasks == nil {
		return nil, ErrNilTasks
	}
	groups := GroupByTag(tasks, TagFilters(filterTokens))
	out := make([]ListingGroup, 0, len(groups))
	for _, group := range groups {
		if len(group.Tasks) == 0 {
			continue
		}
		lg := ListingGroup{Header: strings.TrimPrefix(group.Tag, TagMarker)}
		for _, idx := range group.Tasks {
			lg.Rows = append(lg.Rows, ListingRow{ID: tasks[idx].ID, Title: tasks[idx].Title})
		}
		out = append(out, lg)
	}
	return out, nil
}
