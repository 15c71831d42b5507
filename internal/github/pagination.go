package github

import (
	"context"
	"strings"
)

// paginate walks a list endpoint by following rel="next" Link headers and
// returns all items in API order. maxPages <= 0 means no limit.
func paginate[T any](ctx context.Context, c *Client, first string, maxPages int) ([]T, error) {
	var all []T
	next := first

	for page := 0; next != ""; page++ {
		if maxPages > 0 && page >= maxPages {
			break
		}

		var items []T
		header, err := c.getJSON(ctx, next, &items)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		next = nextLink(header.Get("Link"))
	}

	return all, nil
}

// nextLink extracts the rel="next" target from an RFC 8288 Link header:
//
//	<https://api.github.com/...&page=2>; rel="next", <...>; rel="last"
func nextLink(header string) string {
	for _, link := range strings.Split(header, ",") {
		target, params, ok := strings.Cut(link, ";")
		if !ok {
			continue
		}
		for _, p := range strings.Split(params, ";") {
			if strings.TrimSpace(p) == `rel="next"` {
				return strings.Trim(strings.TrimSpace(target), "<>")
			}
		}
	}
	return ""
}
