package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/agisilaos/gtd-cli/internal/api"
)

// noTagKey is the reserved bucket for tasks without tags. Real tags always
// carry the @ marker, so the empty string cannot collide, and it sorts ahead
// of every tag.
const noTagKey = ""

// TagGroup holds non-owning references (indices into the input slice) so a
// task fanning out to several tags is not copied per group.
type TagGroup struct {
	Tag   string
	Tasks []int
}

// GroupByTag partitions tasks by tag, stable in input order within each
// group. A task with N tags appears in all N groups; a tagless task lands in
// the reserved no-tag group. Tasks without a title (blank counts as missing)
// are skipped as malformed service records.
//
// When tagFilters is non-empty the groups come back in that order, skipping
// tags with no tasks; otherwise all keys are returned lexicographically.
func GroupByTag(tasks []api.Task, tagFilters []string) []TagGroup {
	buckets := make(map[string][]int)
	for i, task := range tasks {
		if strings.TrimSpace(task.Title) == "" {
			continue
		}
		if len(task.Tags) == 0 {
			buckets[noTagKey] = append(buckets[noTagKey], i)
			continue
		}
		for _, tag := range task.Tags {
			buckets[tag] = append(buckets[tag], i)
		}
	}

	var keys []string
	if len(tagFilters) > 0 {
		for _, tag := range tagFilters {
			if _, ok := buckets[tag]; ok {
				keys = append(keys, tag)
			}
		}
	} else {
		for key := range buckets {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	groups := make([]TagGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, TagGroup{Tag: key, Tasks: buckets[key]})
	}
	return groups
}

// BucketCounts carries the two independent per-bucket counters of the
// summary report. Every task contributes exactly one increment to each map,
// sentinel buckets included.
type BucketCounts struct {
	Starting map[string]int
	Due      map[string]int
}

func CountByBucket(tasks []api.Task, today time.Time) BucketCounts {
	counts := BucketCounts{
		Starting: make(map[string]int),
		Due:      make(map[string]int),
	}
	for _, task := range tasks {
		counts.Starting[StartBucket(task.StartDate, today)]++
		counts.Due[DueBucket(task.DueDate)]++
	}
	return counts
}
