package models

import "time"

type UserProfile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the profile name, or the login when no name is set.
func (u UserProfile) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// CommitApproximation is a best-effort commit count derived from the public
// event log. Estimated is set when the counts come from the repository-count
// heuristic instead of observed push events.
type CommitApproximation struct {
	Total     int  `json:"total"`
	ThisYear  int  `json:"this_year"`
	ThisMonth int  `json:"this_month"`
	ThisWeek  int  `json:"this_week"`
	Estimated bool `json:"estimated"`
}

// Event is a public activity event reduced to the fields the commit
// approximation needs.
type Event struct {
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	CommitCount int       `json:"commit_count"`
}

const PushEvent = "PushEvent"

// ProfileData is everything the cards are rendered from.
type ProfileData struct {
	User       UserProfile         `json:"user"`
	Languages  []LanguageShare     `json:"languages"`
	TotalStars int                 `json:"total_stars"`
	TotalForks int                 `json:"total_forks"`
	TopRepos   []RepositorySummary `json:"top_repos"`
	Commits    CommitApproximation `json:"commits"`
}
