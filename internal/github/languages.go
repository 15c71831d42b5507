package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

// ListLanguages returns the byte count per language of one repository in the
// order the API reports them (largest first).
func (c *Client) ListLanguages(ctx context.Context, owner, repo string) ([]models.LanguageBytes, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	var langs languageList
	if _, err := c.getJSON(ctx, endpoint, &langs); err != nil {
		return nil, fmt.Errorf("listing languages for %s/%s: %w", owner, repo, err)
	}
	return langs, nil
}

// languageList decodes a {"Go": 123, ...} object without losing key order,
// which a map would.
type languageList []models.LanguageBytes

func (l *languageList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	out := languageList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected language name, got %v", keyTok)
		}

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("decoding bytes for %s: %w", name, err)
		}
		b, err := n.Int64()
		if err != nil {
			return fmt.Errorf("decoding bytes for %s: %w", name, err)
		}
		if b < 0 {
			b = 0
		}
		out = append(out, models.LanguageBytes{Name: name, Bytes: b})
	}

	*l = out
	return nil
}
