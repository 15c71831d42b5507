package aggregate

import (
	"sort"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

// Languages merges per-repository language bytes into overall shares.
//
// Failed results contribute nothing. Languages are first collected in the
// order they are first seen (results order, then API order within one
// repository) and then stably sorted by descending bytes, so equal byte
// counts keep discovery order. When no bytes were seen at all every
// percentage is 0.
func Languages(results []Result[[]models.LanguageBytes]) []models.LanguageShare {
	var order []string
	totals := make(map[string]int64)

	for _, r := range results {
		if r.Failed() {
			continue
		}
		for _, lb := range r.Value {
			if _, seen := totals[lb.Name]; !seen {
				order = append(order, lb.Name)
			}
			totals[lb.Name] += lb.Bytes
		}
	}

	var sum int64
	for _, b := range totals {
		sum += b
	}

	shares := make([]models.LanguageShare, 0, len(order))
	for _, name := range order {
		b := totals[name]
		pct := 0.0
		if sum > 0 {
			pct = float64(b) / float64(sum) * 100
		}
		shares = append(shares, models.LanguageShare{
			Name:       name,
			Bytes:      b,
			Percentage: pct,
			Color:      LanguageColor(name),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Bytes > shares[j].Bytes
	})
	return shares
}

// Top returns a copy of the first n items. The input is left untouched so
// totals computed over the full list stay available.
func Top[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	n = min(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
