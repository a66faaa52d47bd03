package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateDefaults(t *testing.T) {
	assert.Equal(t, []string{"active"}, Translate(""))
	assert.Equal(t, []string{"active"}, Translate("all"))
	assert.Equal(t, []string{"active"}, Translate("   "))
}

func TestTranslateExpandsToday(t *testing.T) {
	assert.Equal(t, []string{"active", "workview"}, Translate("today"))

	got := Translate("@home today active")
	assert.NotContains(t, got, "today")
	assert.Equal(t, []string{"@home", "active", "active", "workview"}, got)

	// Repeated today tokens are all removed, the expansion appended once.
	assert.Equal(t, []string{"@errands", "active", "workview"}, Translate("today @errands today"))
}

func TestTranslatePassesTokensVerbatim(t *testing.T) {
	assert.Equal(t, []string{"workable", "@home"}, Translate("workable @home"))
}

// A lone tag filter is not expanded with active. Callers wanting active-only
// tag filtering must ask for it; this pins the observed behavior rather than
// the arguably nicer one.
func TestTranslateTagOnlyCriteria(t *testing.T) {
	assert.Equal(t, []string{"@home"}, Translate("@home"))
}

func TestTagFilters(t *testing.T) {
	assert.Equal(t, []string{"@home", "@errands"}, TagFilters([]string{"active", "@home", "workview", "@errands"}))
	assert.Nil(t, TagFilters([]string{"active"}))
}

func TestHasToday(t *testing.T) {
	assert.True(t, HasToday("@home today"))
	assert.False(t, HasToday("todayish @home"))
	assert.False(t, HasToday(""))
}

func TestSummaryCriteriaDefaultsToWorkable(t *testing.T) {
	assert.Equal(t, "workable", SummaryCriteria(""))
	assert.Equal(t, "workable", SummaryCriteria("all"))
	assert.Equal(t, "@home", SummaryCriteria("@home"))
}
