package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHubToken  string
	GitHubUser   string
	GitHubAPIURL string

	BlogFeedURL  string
	PostsFeedURL string
	PostsSiteURL string

	BlueskyHandle string
	BlueskyAPIURL string

	OutputDir    string
	ProfileFile  string
	FetchTimeout time.Duration

	Profile Profile
}

// Profile is the hand-written part of the page: text the APIs cannot supply.
type Profile struct {
	Taglines    []string     `yaml:"taglines"`
	Bio         []string     `yaml:"bio"`
	PostsTitle  string       `yaml:"posts_title"`
	MaxLangs    int          `yaml:"max_languages"`
	MaxRepos    int          `yaml:"max_repos"`
	MaxPosts    int          `yaml:"max_posts"`
	SocialLinks []SocialLink `yaml:"social_links"`
}

type SocialLink struct {
	Alt       string `yaml:"alt"`
	URL       string `yaml:"url"`
	Label     string `yaml:"label"`
	Logo      string `yaml:"logo"`
	LogoColor string `yaml:"logo_color"`
	Color     string `yaml:"color"`
}

const (
	defaultGitHubAPIURL  = "https://api.github.com"
	defaultBlueskyAPIURL = "https://public.api.bsky.app"
	defaultOutputDir     = "."
	defaultFetchTimeout  = 10 * time.Second
	defaultProfileFile   = "profile.yaml"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		GitHubUser:   os.Getenv("GITHUB_USER"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),

		BlogFeedURL:  os.Getenv("BLOG_FEED_URL"),
		PostsFeedURL: os.Getenv("POSTS_FEED_URL"),
		PostsSiteURL: os.Getenv("POSTS_SITE_URL"),

		BlueskyHandle: os.Getenv("BLUESKY_HANDLE"),
		BlueskyAPIURL: os.Getenv("BLUESKY_API_URL"),

		OutputDir:   os.Getenv("OUTPUT_DIR"),
		ProfileFile: os.Getenv("PROFILE_FILE"),
	}

	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = defaultGitHubAPIURL
	}
	cfg.GitHubAPIURL = strings.TrimSuffix(cfg.GitHubAPIURL, "/")
	if cfg.BlueskyAPIURL == "" {
		cfg.BlueskyAPIURL = defaultBlueskyAPIURL
	}
	cfg.BlueskyAPIURL = strings.TrimSuffix(cfg.BlueskyAPIURL, "/")
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}

	cfg.FetchTimeout = defaultFetchTimeout
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("parsing FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}

	// A missing default profile file is fine; an explicitly named one is not.
	path := cfg.ProfileFile
	explicit := path != ""
	if !explicit {
		path = defaultProfileFile
	}
	profile, err := LoadProfile(path)
	switch {
	case err == nil:
		cfg.Profile = *profile
	case !explicit && os.IsNotExist(err):
		cfg.Profile.applyDefaults()
	default:
		return nil, err
	}

	if cfg.GitHubUser == "" {
		return nil, fmt.Errorf("GITHUB_USER is required")
	}
	return cfg, nil
}

// LoadProfile reads the YAML profile file and fills in defaults.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}
	p.applyDefaults()
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.MaxLangs <= 0 {
		p.MaxLangs = 8
	}
	if p.MaxRepos <= 0 {
		p.MaxRepos = 6
	}
	if p.MaxPosts <= 0 {
		p.MaxPosts = 5
	}
	if p.PostsTitle == "" {
		p.PostsTitle = "Recent Posts"
	}
}

// parseTimeout accepts a Go duration ("15s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
