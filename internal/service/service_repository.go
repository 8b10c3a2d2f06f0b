package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/ucn-accounts/internal/adapter"
	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/metrics"
	"github.com/MKhiriev/ucn-accounts/models"
	"golang.org/x/sync/errgroup"
)

// repositoryService proxies the GitHub owner configured in the adapter and
// adds a commit count to every repository.
type repositoryService struct {
	gitHub adapter.GitHubAdapter

	// maxConcurrency bounds in-flight commit lookups while listing.
	maxConcurrency int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewRepositoryService(gitHub adapter.GitHubAdapter, cfg config.GitHub, m *metrics.Metrics, logger *logger.Logger) RepositoryService {
	limit := cfg.MaxConcurrency
	if limit < 1 {
		limit = 1
	}

	return &repositoryService{
		gitHub:         gitHub,
		maxConcurrency: limit,
		metrics:        m,
		logger:         logger,
	}
}

// ListRepositories fails only when the listing itself fails. A repository
// whose commits cannot be read is returned with a zero count.
func (s *repositoryService) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	log := logger.FromContext(ctx)

	repos, err := s.gitHub.ListRepositories(ctx)
	s.metrics.ObserveGitHubRequest(err == nil)
	if err != nil {
		log.Err(err).Msg("listing github repositories failed")
		return nil, ErrGitHubUnavailable
	}

	var g errgroup.Group
	g.SetLimit(s.maxConcurrency)

	for i := range repos {
		g.Go(func() error {
			commits, err := s.gitHub.ListCommits(ctx, repos[i].Name)
			s.metrics.ObserveGitHubRequest(err == nil)
			if err != nil {
				log.Warn().Err(err).Str("repo", repos[i].Name).Msg("counting commits failed")
				repos[i].CommitsCount = 0
				return nil
			}
			repos[i].CommitsCount = len(commits)
			return nil
		})
	}
	_ = g.Wait()

	if repos == nil {
		repos = []models.Repository{}
	}
	return repos, nil
}

func (s *repositoryService) ListCommits(ctx context.Context, repoName string) ([]models.Commit, error) {
	log := logger.FromContext(ctx)

	repoName = strings.TrimSpace(repoName)
	if repoName == "" {
		return nil, ErrNoRepositoryName
	}

	commits, err := s.gitHub.ListCommits(ctx, repoName)
	s.metrics.ObserveGitHubRequest(err == nil)
	if errors.Is(err, adapter.ErrNotFound) {
		log.Warn().Str("repo", repoName).Msg("github repository not found")
		return nil, ErrRepositoryNotFound
	}
	if err != nil {
		log.Err(err).Str("repo", repoName).Msg("listing github commits failed")
		return nil, ErrGitHubUnavailable
	}

	if commits == nil {
		commits = []models.Commit{}
	}
	return commits, nil
}
