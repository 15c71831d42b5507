package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinmichaelchen/profile-readme/internal/aggregate"
	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

func TestOwnRepositoriesDropsForks(t *testing.T) {
	t.Parallel()

	own := aggregate.OwnRepositories([]models.Repository{
		{Name: "a"},
		{Name: "b", Fork: true},
		{Name: "c"},
	})

	assert.Equal(t, []models.Repository{{Name: "a"}, {Name: "c"}}, own)
}

func TestTotals(t *testing.T) {
	t.Parallel()

	stars, forks := aggregate.Totals([]models.Repository{
		{Name: "a", Stars: 5, Forks: 1},
		{Name: "b", Stars: 20, Forks: 4},
		{Name: "c", Stars: 1},
	})

	assert.Equal(t, 26, stars)
	assert.Equal(t, 5, forks)
}

func TestTopRepositoriesRanksByStars(t *testing.T) {
	t.Parallel()

	repos := aggregate.OwnRepositories([]models.Repository{
		{Name: "five", Stars: 5},
		{Name: "twenty", Stars: 20},
		{Name: "fork", Stars: 100, Fork: true},
		{Name: "one", Stars: 1},
	})

	top := aggregate.TopRepositories(repos, 6)

	stars := make([]int, 0, len(top))
	for _, r := range top {
		stars = append(stars, r.Stars)
	}
	assert.Equal(t, []int{20, 5, 1}, stars)
	assert.Equal(t, "five", repos[0].Name, "input order must be preserved")
}

func TestTopRepositoriesTiesAndLimit(t *testing.T) {
	t.Parallel()

	top := aggregate.TopRepositories([]models.Repository{
		{Name: "first", Stars: 3},
		{Name: "second", Stars: 3},
		{Name: "third", Stars: 3},
	}, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "first", top[0].Name)
	assert.Equal(t, "second", top[1].Name)
}
