package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDayRejectsNonDates(t *testing.T) {
	for _, input := range []string{"", "someday", "never", "garbage", "2024-1-2", "2024-13-40", "2024-01-02T10:00:00Z"} {
		_, ok := ParseDay(input)
		assert.False(t, ok, "input %q", input)
	}
	parsed, ok := ParseDay("2024-06-01")
	assert.True(t, ok)
	assert.Equal(t, day("2024-06-01"), parsed)
}

func TestIsPastOrToday(t *testing.T) {
	today := day("2024-06-10")
	assert.True(t, IsPastOrToday("2024-06-10", today))
	assert.True(t, IsPastOrToday("2023-12-31", today))
	assert.False(t, IsPastOrToday("2024-06-11", today))
	assert.False(t, IsPastOrToday("someday", today))
	assert.False(t, IsPastOrToday("", today))
}

func TestStartBucketFoldsForward(t *testing.T) {
	today := day("2024-06-10")
	assert.Equal(t, BucketUnscheduled, StartBucket("", today))
	assert.Equal(t, "2024-06-10", StartBucket("2024-06-01", today))
	assert.Equal(t, "2024-06-10", StartBucket("2024-06-10", today))
	assert.Equal(t, "2024-07-01", StartBucket("2024-07-01", today))
	// Sentinels pass through untouched.
	assert.Equal(t, "someday", StartBucket("someday", today))
}

func TestStartBucketIdempotentOnOutput(t *testing.T) {
	today := day("2024-06-10")
	for _, input := range []string{"", "2024-05-01", "2024-06-10", "2024-08-15", "someday"} {
		once := StartBucket(input, today)
		assert.Equal(t, once, StartBucket(once, today), "input %q", input)
	}
}

func TestDueBucketNeverFolds(t *testing.T) {
	assert.Equal(t, BucketNever, DueBucket(""))
	assert.Equal(t, "someday", DueBucket("someday"))
	assert.Equal(t, "2024-06-01", DueBucket("2024-06-01"))
	assert.Equal(t, "2020-01-01", DueBucket("2020-01-01"))
}

func TestDayLabelNoLeadingZero(t *testing.T) {
	assert.Equal(t, "Sat Jun 1", DayLabel(day("2024-06-01")))
	assert.Equal(t, "Wed Dec 25", DayLabel(day("2024-12-25")))
}
