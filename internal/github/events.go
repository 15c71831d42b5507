package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

// The events API never serves more than 300 events (3 pages of 100).
const maxEventPages = 3

type eventResponse struct {
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

type pushPayload struct {
	Size    *int              `json:"size"`
	Commits []json.RawMessage `json:"commits"`
}

// ListPublicEvents returns the user's public events, newest first.
func (c *Client) ListPublicEvents(ctx context.Context, login string) ([]models.Event, error) {
	first := fmt.Sprintf("%s/users/%s/events/public?per_page=100", c.baseURL, url.PathEscape(login))

	raw, err := paginate[eventResponse](ctx, c, first, maxEventPages)
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", login, err)
	}

	events := make([]models.Event, 0, len(raw))
	for _, e := range raw {
		// An unparsable timestamp leaves CreatedAt zero: the event still counts
		// toward the total but falls in no time window.
		created, _ := time.Parse(time.RFC3339, e.CreatedAt)
		ev := models.Event{Type: e.Type, CreatedAt: created}
		if e.Type == models.PushEvent {
			ev.CommitCount = pushCommitCount(e.Payload)
		}
		events = append(events, ev)
	}
	return events, nil
}

// pushCommitCount prefers the payload's size field and falls back to the
// length of the commits array. Malformed payloads count as zero.
func pushCommitCount(payload json.RawMessage) int {
	if len(payload) == 0 {
		return 0
	}
	var p pushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0
	}
	if p.Size != nil && *p.Size >= 0 {
		return *p.Size
	}
	return len(p.Commits)
}
