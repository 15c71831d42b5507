package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kevinmichaelchen/profile-readme/internal/aggregate"
	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func push(at time.Time, n int) models.Event {
	return models.Event{Type: models.PushEvent, CreatedAt: at, CommitCount: n}
}

func TestCommitsWindows(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		push(now.Add(-time.Hour), 2),
		push(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), 3),
		push(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 1),
		push(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 4),
		push(time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), 5),
		{Type: "WatchEvent", CreatedAt: now, CommitCount: 50},
	}

	c := aggregate.Commits(events, 7, now)

	assert.Equal(t, models.CommitApproximation{
		Total:     15,
		ThisYear:  10,
		ThisMonth: 6,
		ThisWeek:  2,
	}, c)
}

func TestCommitsWeekBoundary(t *testing.T) {
	t.Parallel()

	c := aggregate.Commits([]models.Event{
		push(now.Add(-7*24*time.Hour), 1),
		push(now.Add(-7*24*time.Hour-time.Second), 1),
	}, 0, now)

	assert.Equal(t, 2, c.Total)
	assert.Equal(t, 1, c.ThisWeek)
}

func TestCommitsUndatedPushCountsOnlyTowardTotal(t *testing.T) {
	t.Parallel()

	c := aggregate.Commits([]models.Event{
		push(now.Add(-time.Hour), 5),
		push(time.Time{}, 2),
	}, 4, now)

	assert.Equal(t, models.CommitApproximation{Total: 7, ThisYear: 5, ThisMonth: 5, ThisWeek: 5}, c)
}

func TestCommitsFallbackWhenNoPushes(t *testing.T) {
	t.Parallel()

	c := aggregate.Commits([]models.Event{{Type: "IssuesEvent", CreatedAt: now}}, 7, now)

	assert.Equal(t, models.CommitApproximation{
		Total:     70,
		ThisYear:  21,
		ThisMonth: 7,
		ThisWeek:  1,
		Estimated: true,
	}, c)
}

func TestCommitsFallbackWhenPushesAreEmpty(t *testing.T) {
	t.Parallel()

	c := aggregate.Commits([]models.Event{push(now, 0), push(now, -3)}, 3, now)

	assert.True(t, c.Estimated)
	assert.Equal(t, 30, c.Total)
	assert.Equal(t, 9, c.ThisYear)
	assert.Equal(t, 3, c.ThisMonth)
	assert.Equal(t, 0, c.ThisWeek)
}

func TestCommitsFallbackRatios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		repos                    int
		total, year, month, week int
	}{
		{0, 0, 0, 0, 0},
		{1, 10, 3, 1, 0},
		{5, 50, 15, 5, 1},
		{13, 130, 39, 13, 2},
		{100, 1000, 300, 100, 20},
	}

	for _, tt := range tests {
		c := aggregate.CommitsFallback(tt.repos)
		assert.Equal(t, tt.total, c.Total, "repos=%d", tt.repos)
		assert.Equal(t, tt.year, c.ThisYear, "repos=%d", tt.repos)
		assert.Equal(t, tt.month, c.ThisMonth, "repos=%d", tt.repos)
		assert.Equal(t, tt.week, c.ThisWeek, "repos=%d", tt.repos)
		assert.True(t, c.Estimated)
	}
}
