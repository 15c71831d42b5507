package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

// OwnRepositories drops forks, keeping listing order.
func OwnRepositories(repos []models.Repository) []models.Repository {
	return lo.Filter(repos, func(r models.Repository, _ int) bool { return !r.Fork })
}

// Totals sums stars and forks over the full repository set.
func Totals(repos []models.Repository) (stars, forks int) {
	stars = lo.SumBy(repos, func(r models.Repository) int { return r.Stars })
	forks = lo.SumBy(repos, func(r models.Repository) int { return r.Forks })
	return stars, forks
}

// TopRepositories ranks repositories by stars, descending; ties keep their
// listing order.
func TopRepositories(repos []models.Repository, n int) []models.RepositorySummary {
	ranked := make([]models.Repository, len(repos))
	copy(ranked, repos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})

	return lo.Map(Top(ranked, n), func(r models.Repository, _ int) models.RepositorySummary {
		return models.RepositorySummary{
			Name:        r.Name,
			Stars:       r.Stars,
			Language:    r.Language,
			Description: r.Description,
		}
	})
}
