package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agisilaos/gtd-cli/internal/api"
)

func TestGroupByTagFanOutAccounting(t *testing.T) {
	tasks := []api.Task{
		{ID: "1", Title: "a", Tags: []string{"@x"}},
		{ID: "2", Title: "b"},
		{ID: "3", Title: "c", Tags: []string{"@x", "@y", "@z"}},
		{ID: "4", Title: "d", Tags: []string{"@y"}},
	}
	groups := GroupByTag(tasks, nil)

	total := 0
	for _, group := range groups {
		total += len(group.Tasks)
	}
	// One reference per tag, one for the tagless task: 1 + 1 + 3 + 1.
	assert.Equal(t, 6, total)
}

func TestGroupByTagSkipsUntitled(t *testing.T) {
	tasks := []api.Task{
		{ID: "1", Title: "keep", Tags: []string{"@x"}},
		{ID: "2", Tags: []string{"@x"}},
		{ID: "3"},
		{ID: "4", Title: "   ", Tags: []string{"@x"}},
	}
	groups := GroupByTag(tasks, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, "@x", groups[0].Tag)
	assert.Equal(t, []int{0}, groups[0].Tasks)
}

func TestGroupByTagLexicographicWithNoTagFirst(t *testing.T) {
	tasks := []api.Task{
		{ID: "1", Title: "A", Tags: []string{"@x"}},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C", Tags: []string{"@x", "@y"}},
	}
	groups := GroupByTag(tasks, nil)
	require.Len(t, groups, 3)
	assert.Equal(t, noTagKey, groups[0].Tag)
	assert.Equal(t, []int{1}, groups[0].Tasks)
	assert.Equal(t, "@x", groups[1].Tag)
	assert.Equal(t, []int{0, 2}, groups[1].Tasks)
	assert.Equal(t, "@y", groups[2].Tag)
	assert.Equal(t, []int{2}, groups[2].Tasks)
}

func TestGroupByTagExplicitFilterOrder(t *testing.T) {
	tasks := []api.Task{
		{ID: "1", Title: "a", Tags: []string{"@x"}},
		{ID: "2", Title: "b", Tags: []string{"@y"}},
	}
	groups := GroupByTag(tasks, []string{"@y", "@missing", "@x"})
	require.Len(t, groups, 2)
	assert.Equal(t, "@y", groups[0].Tag)
	assert.Equal(t, "@x", groups[1].Tag)
}

func TestGroupByTagStableWithinGroup(t *testing.T) {
	tasks := []api.Task{
		{ID: "3", Title: "third", Tags: []string{"@x"}},
		{ID: "1", Title: "first", Tags: []string{"@x"}},
		{ID: "2", Title: "second", Tags: []string{"@x"}},
	}
	groups := GroupByTag(tasks, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 1, 2}, groups[0].Tasks)
}

func TestCountByBucketEveryTaskCountsOnceEach(t *testing.T) {
	today := day("2024-06-10")
	tasks := []api.Task{
		{ID: "1", StartDate: "2024-06-01", DueDate: "2024-06-15"},
		{ID: "2", StartDate: "", DueDate: ""},
		{ID: "3", StartDate: "2024-07-01", DueDate: "someday"},
		{ID: "4", StartDate: "never", DueDate: "2024-06-10"},
	}
	counts := CountByBucket(tasks, today)

	startTotal, dueTotal := 0, 0
	for _, n := range counts.Starting {
		startTotal += n
	}
	for _, n := range counts.Due {
		dueTotal += n
	}
	assert.Equal(t, len(tasks), startTotal)
	assert.Equal(t, len(tasks), dueTotal)

	assert.Equal(t, 1, counts.Starting[BucketUnscheduled])
	assert.Equal(t, 1, counts.Starting["2024-06-10"]) // folded forward
	assert.Equal(t, 1, counts.Starting["2024-07-01"])
	assert.Equal(t, 1, counts.Starting["never"])
	assert.Equal(t, 1, counts.Due[BucketNever])
	assert.Equal(t, 1, counts.Due["someday"])
}
