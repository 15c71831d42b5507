package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kevinmichaelchen/profile-readme/internal/aggregate"
	"github.com/kevinmichaelchen/profile-readme/internal/config"
	"github.com/kevinmichaelchen/profile-readme/internal/feed"
	"github.com/kevinmichaelchen/profile-readme/internal/github"
	"github.com/kevinmichaelchen/profile-readme/internal/models"
	"github.com/kevinmichaelchen/profile-readme/internal/readme"
	"github.com/kevinmichaelchen/profile-readme/internal/render"
)

const (
	generatedDir   = "generated"
	readmeFileName = "README.md"

	defaultConcurrency = 8
)

// GitHub is the subset of the GitHub client the pipeline needs.
type GitHub interface {
	FetchUser(ctx context.Context, login string) (*models.UserProfile, error)
	ListRepos(ctx context.Context, login string) ([]models.Repository, error)
	ListLanguages(ctx context.Context, owner, repo string) ([]models.LanguageBytes, error)
	ListPublicEvents(ctx context.Context, login string) ([]models.Event, error)
}

// LatestSource returns the newest entry of a feed, or nil when it has none.
type LatestSource interface {
	Latest(ctx context.Context) (*models.FeedPost, error)
}

type RecentSource interface {
	Recent(ctx context.Context) ([]models.FeedPost, error)
}

// Deps are the collaborators of a run. Nil feed sources are skipped.
type Deps struct {
	GitHub GitHub
	Blog   LatestSource
	Posts  RecentSource
	Social LatestSource
	Logger *zap.Logger
	Now    func() time.Time
}

// NewDeps wires the real HTTP clients from the configuration.
func NewDeps(cfg *config.Config, logger *zap.Logger) Deps {
	d := Deps{
		GitHub: github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.FetchTimeout),
		Logger: logger,
		Now:    time.Now,
	}
	if cfg.BlogFeedURL != "" {
		d.Blog = feed.NewBlogFetcher(cfg.BlogFeedURL, cfg.FetchTimeout)
	}
	if cfg.PostsFeedURL != "" {
		d.Posts = feed.NewBlogFetcher(cfg.PostsFeedURL, cfg.FetchTimeout)
	}
	if cfg.BlueskyHandle != "" {
		d.Social = feed.NewBlueskyFetcher(cfg.BlueskyAPIURL, cfg.BlueskyHandle, cfg.FetchTimeout)
	}
	return d
}

type Options struct {
	OutputDir   string
	DryRun      bool
	Concurrency int
}

// Snapshot is the raw data fetched in one run.
type Snapshot struct {
	User      models.UserProfile
	Repos     []models.Repository
	Languages []aggregate.Result[[]models.LanguageBytes]
	Events    []models.Event
	EventsErr error
	Latest    *models.FeedPost
	Posts     []models.FeedPost
	Social    *models.FeedPost
}

// Output is a fully rendered run, ready to be written.
type Output struct {
	Data      models.ProfileData
	Documents []models.RenderedDocument
	Readme    string
}

// Run fetches, aggregates, renders and writes the profile. Nothing is
// written unless every stage before writing succeeded.
func Run(ctx context.Context, cfg *config.Config, deps Deps, opts Options) (*Output, error) {
	deps = deps.withDefaults()
	log := deps.Logger

	log.Info("fetching profile data", zap.String("user", cfg.GitHubUser))
	snap, err := Collect(ctx, cfg.GitHubUser, deps, opts.Concurrency)
	if err != nil {
		return nil, err
	}
	log.Info("fetched profile data",
		zap.Int("repos", len(snap.Repos)),
		zap.Int("events", len(snap.Events)),
		zap.Int("posts", len(snap.Posts)))

	out, err := Build(snap, cfg, deps.Now())
	if err != nil {
		return nil, err
	}
	log.Info("aggregated",
		zap.Int("languages", len(out.Data.Languages)),
		zap.Int("stars", out.Data.TotalStars),
		zap.Int("commits", out.Data.Commits.Total),
		zap.Bool("commits_estimated", out.Data.Commits.Estimated))

	if opts.DryRun {
		log.Info("dry run, skipping writes")
		return out, nil
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	if err := Write(out, dir); err != nil {
		return nil, err
	}
	log.Info("wrote profile", zap.String("dir", dir), zap.Int("documents", len(out.Documents)+1))
	return out, nil
}

// Collect performs every network fetch. The user profile and repository
// listing are mandatory; any other failure is logged and degrades to an
// empty value.
func Collect(ctx context.Context, login string, deps Deps, concurrency int) (*Snapshot, error) {
	deps = deps.withDefaults()
	log := deps.Logger
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	snap := &Snapshot{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := deps.GitHub.FetchUser(gCtx, login)
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("no profile returned for %s", login)
		}
		snap.User = *u
		return nil
	})
	g.Go(func() error {
		repos, err := deps.GitHub.ListRepos(gCtx, login)
		if err != nil {
			return err
		}
		snap.Repos = repos
		return nil
	})
	g.Go(func() error {
		snap.Events, snap.EventsErr = deps.GitHub.ListPublicEvents(gCtx, login)
		if snap.EventsErr != nil {
			log.Warn("event log unavailable, commit counts will be estimated", zap.Error(snap.EventsErr))
		}
		return nil
	})
	if deps.Blog != nil {
		g.Go(func() error {
			snap.Latest = fetchLatest(gCtx, log, "blog", deps.Blog)
			return nil
		})
	}
	if deps.Social != nil {
		g.Go(func() error {
			snap.Social = fetchLatest(gCtx, log, "bluesky", deps.Social)
			return nil
		})
	}
	if deps.Posts != nil {
		g.Go(func() error {
			posts, err := deps.Posts.Recent(gCtx)
			if err != nil {
				log.Warn("posts feed unavailable", zap.Error(err))
				return nil
			}
			snap.Posts = posts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching github data: %w", err)
	}

	snap.Languages = collectLanguages(ctx, log, deps.GitHub, login, aggregate.OwnRepositories(snap.Repos), concurrency)
	return snap, nil
}

// collectLanguages looks up every repository's languages concurrently. Each
// lookup writes only its own slot, so results stay in repository order.
func collectLanguages(ctx context.Context, log *zap.Logger, gh GitHub, owner string, repos []models.Repository, concurrency int) []aggregate.Result[[]models.LanguageBytes] {
	results := make([]aggregate.Result[[]models.LanguageBytes], len(repos))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			langs, err := gh.ListLanguages(ctx, owner, repo.Name)
			if err != nil {
				log.Warn("language lookup failed", zap.String("repo", repo.Name), zap.Error(err))
				results[i] = aggregate.Failed[[]models.LanguageBytes](repo.Name, err)
				return nil
			}
			results[i] = aggregate.OK(repo.Name, langs)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func fetchLatest(ctx context.Context, log *zap.Logger, name string, src LatestSource) *models.FeedPost {
	post, err := src.Latest(ctx)
	if err != nil {
		log.Warn("feed unavailable, using empty card", zap.String("feed", name), zap.Error(err))
		return nil
	}
	if post == nil {
		log.Info("feed has no entries", zap.String("feed", name))
	}
	return post
}

// Build aggregates a snapshot and renders every document. It does no I/O,
// so identical snapshots and clocks give identical output.
func Build(snap *Snapshot, cfg *config.Config, now time.Time) (*Output, error) {
	own := aggregate.OwnRepositories(snap.Repos)
	stars, forks := aggregate.Totals(own)

	commits := aggregate.CommitsFallback(len(own))
	if snap.EventsErr == nil {
		commits = aggregate.Commits(snap.Events, len(own), now)
	}

	data := models.ProfileData{
		User:       snap.User,
		Languages:  aggregate.Languages(snap.Languages),
		TotalStars: stars,
		TotalForks: forks,
		TopRepos:   aggregate.TopRepositories(own, cfg.Profile.MaxRepos),
		Commits:    commits,
	}

	out := &Output{Data: data}

	renderers := []func() (models.RenderedDocument, error){
		func() (models.RenderedDocument, error) {
			return render.Header(data.User.DisplayName(), cfg.Profile.Taglines)
		},
		func() (models.RenderedDocument, error) { return render.Languages(data.Languages, cfg.Profile.MaxLangs) },
		func() (models.RenderedDocument, error) { return render.Stats(data) },
		func() (models.RenderedDocument, error) { return render.LatestPost(snap.Latest) },
		func() (models.RenderedDocument, error) { return render.SocialPost(snap.Social, now) },
	}
	for _, r := range renderers {
		doc, err := r()
		if err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, doc)
	}

	md, err := readme.Build(readme.Input{
		Name:         data.User.DisplayName(),
		Bio:          bioLines(cfg.Profile.Bio, data.User.Bio),
		GeneratedDir: generatedDir,
		SocialCard:   cfg.BlueskyHandle != "",
		Posts:        snap.Posts,
		PostsTitle:   cfg.Profile.PostsTitle,
		PostsSiteURL: cfg.PostsSiteURL,
		MaxPosts:     cfg.Profile.MaxPosts,
		SocialLinks:  cfg.Profile.SocialLinks,
	})
	if err != nil {
		return nil, err
	}
	out.Readme = md
	return out, nil
}

// bioLines prefers the hand-written bio and falls back to the GitHub bio.
func bioLines(configured []string, githubBio string) []string {
	if len(configured) > 0 {
		return configured
	}
	if githubBio != "" {
		return []string{githubBio}
	}
	return nil
}

// Write stores the cards under dir/generated and the README in dir,
// overwriting previous output. Every file is first staged next to its
// target; targets are only replaced once all files are staged, so a failed
// write leaves the previous output untouched.
func Write(out *Output, dir string) error {
	genDir := filepath.Join(dir, generatedDir)
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", genDir, err)
	}

	files := make([]stagedFile, 0, len(out.Documents)+1)
	for _, doc := range out.Documents {
		files = append(files, stagedFile{path: filepath.Join(genDir, doc.Name), data: doc.Markup})
	}
	files = append(files, stagedFile{path: filepath.Join(dir, readmeFileName), data: out.Readme})

	for i := range files {
		if err := files[i].stage(); err != nil {
			removeStaged(files)
			return err
		}
	}
	for _, f := range files {
		if err := os.Rename(f.tmp, f.path); err != nil {
			removeStaged(files)
			return fmt.Errorf("replacing %s: %w", f.path, err)
		}
	}
	return nil
}

type stagedFile struct {
	path string
	data string
	tmp  string
}

func (f *stagedFile) stage() error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("staging %s: %w", f.path, err)
	}
	f.tmp = tmp.Name()

	_, err = tmp.WriteString(f.data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(f.tmp, 0o644)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}

// removeStaged deletes temp files that have not been renamed into place.
func removeStaged(files []stagedFile) {
	for _, f := range files {
		if f.tmp != "" {
			_ = os.Remove(f.tmp)
		}
	}
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}
