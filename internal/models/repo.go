package models

// Repository is one entry of the user's repository listing.
type Repository struct {
	Name        string  `json:"name"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	Fork        bool    `json:"fork"`
	Language    *string `json:"language"`
	Description *string `json:"description"`
}

type RepositorySummary struct {
	Name        string  `json:"name"`
	Stars       int     `json:"stars"`
	Language    *string `json:"language"`
	Description *string `json:"description"`
}

// LanguageBytes is a single language entry of one repository, as reported
// by the languages endpoint.
type LanguageBytes struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
}

type LanguageShare struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}
