package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `
taglines:
  - Building things
  - Breaking things
bio:
  - Hello there
max_languages: 6
social_links:
  - alt: Bluesky
    url: https://bsky.app/profile/octo.bsky.social
    label: Bluesky
    logo: bluesky
    logo_color: white
    color: 0285FF
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GITHUB_TOKEN", "GITHUB_USER", "GITHUB_API_URL", "BLOG_FEED_URL", "POSTS_FEED_URL",
		"POSTS_SITE_URL", "BLUESKY_HANDLE", "BLUESKY_API_URL", "OUTPUT_DIR", "PROFILE_FILE", "FETCH_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_USER", "octo")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "octo", cfg.GitHubUser)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIURL)
	assert.Equal(t, "https://public.api.bsky.app", cfg.BlueskyAPIURL)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 8, cfg.Profile.MaxLangs)
	assert.Equal(t, 6, cfg.Profile.MaxRepos)
	assert.Equal(t, 5, cfg.Profile.MaxPosts)
	assert.Equal(t, "Recent Posts", cfg.Profile.PostsTitle)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_USER", "octo")
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")
	t.Setenv("BLUESKY_HANDLE", "octo.bsky.social")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("FETCH_TIMEOUT", "30")
	t.Setenv("PROFILE_FILE", writeProfile(t, profileYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.GitHubToken)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHubAPIURL)
	assert.Equal(t, "octo.bsky.social", cfg.BlueskyHandle)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)

	want := Profile{
		Taglines:   []string{"Building things", "Breaking things"},
		Bio:        []string{"Hello there"},
		PostsTitle: "Recent Posts",
		MaxLangs:   6,
		MaxRepos:   6,
		MaxPosts:   5,
		SocialLinks: []SocialLink{{
			Alt:       "Bluesky",
			URL:       "https://bsky.app/profile/octo.bsky.social",
			Label:     "Bluesky",
			Logo:      "bluesky",
			LogoColor: "white",
			Color:     "0285FF",
		}},
	}
	if diff := cmp.Diff(want, cfg.Profile); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRequiresUser(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.EqualError(t, err, "GITHUB_USER is required")
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_USER", "octo")
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "FETCH_TIMEOUT")
}

func TestLoadMissingExplicitProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_USER", "octo")
	t.Setenv("PROFILE_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadProfile(writeProfile(t, "taglines: [unterminated"))
	assert.ErrorContains(t, err, "parsing profile file")
}

func TestParseTimeout(t *testing.T) {
	t.Parallel()

	d, err := parseTimeout("15")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	d, err = parseTimeout("1m30s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = parseTimeout("later")
	assert.Error(t, err)
}
