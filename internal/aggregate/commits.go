package aggregate

import (
	"math"
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

// Commits approximates commit counts from push events.
//
// Windows are relative to now in now's location: this year starts on
// January 1, this month on the 1st, this week is the last 7×24h. When the
// events contain no commits at all the repository-count heuristic from
// CommitsFallback is returned instead.
func Commits(events []models.Event, repoCount int, now time.Time) models.CommitApproximation {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.Add(-7 * 24 * time.Hour)

	var c models.CommitApproximation
	for _, e := range events {
		if e.Type != models.PushEvent {
			continue
		}
		n := max(e.CommitCount, 0)
		c.Total += n
		if !e.CreatedAt.Before(yearStart) {
			c.ThisYear += n
		}
		if !e.CreatedAt.Before(monthStart) {
			c.ThisMonth += n
		}
		if !e.CreatedAt.Before(weekStart) {
			c.ThisWeek += n
		}
	}

	if c.Total == 0 {
		return CommitsFallback(repoCount)
	}
	return c
}

// CommitsFallback is a rough stand-in used when the event log yields no
// signal: ten commits per repository, of which 30% this year, 10% this month
// and 2% this week. It is not a real commit count and is marked Estimated.
func CommitsFallback(repoCount int) models.CommitApproximation {
	total := max(repoCount, 0) * 10
	return models.CommitApproximation{
		Total:     total,
		ThisYear:  floorRatio(total, 0.3),
		ThisMonth: floorRatio(total, 0.1),
		ThisWeek:  floorRatio(total, 0.02),
		Estimated: true,
	}
}

func floorRatio(total int, ratio float64) int {
	return int(math.Floor(float64(total) * ratio))
}
