package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "profile-readme/1.0"
)

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

type repoResponse struct {
	Name            string  `json:"name"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Fork            bool    `json:"fork"`
	Language        *string `json:"language"`
	Description     *string `json:"description"`
}

func (c *Client) FetchUser(ctx context.Context, login string) (*models.UserProfile, error) {
	var u userResponse
	if _, err := c.getJSON(ctx, c.baseURL+"/users/"+url.PathEscape(login), &u); err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", login, err)
	}
	if u.Login == "" {
		return nil, fmt.Errorf("fetching user %s: response has no login", login)
	}

	return &models.UserProfile{
		Login:       u.Login,
		Name:        u.Name,
		Bio:         u.Bio,
		PublicRepos: max(u.PublicRepos, 0),
		Followers:   max(u.Followers, 0),
		Following:   max(u.Following, 0),
		CreatedAt:   u.CreatedAt,
	}, nil
}

// ListRepos returns every repository owned by login, forks included, in the
// order the API lists them.
func (c *Client) ListRepos(ctx context.Context, login string) ([]models.Repository, error) {
	first := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=owner", c.baseURL, url.PathEscape(login))

	pages, err := paginate[repoResponse](ctx, c, first, 0)
	if err != nil {
		return nil, fmt.Errorf("listing repos for %s: %w", login, err)
	}

	repos := make([]models.Repository, 0, len(pages))
	for _, r := range pages {
		repos = append(repos, models.Repository{
			Name:        r.Name,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
			Fork:        r.Fork,
			Language:    r.Language,
			Description: r.Description,
		})
	}
	return repos, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: endpoint, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return resp.Header, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub API returned %d for %s: %s", e.StatusCode, e.URL, e.Body)
}
