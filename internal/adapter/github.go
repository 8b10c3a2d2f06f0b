package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/models"
)

// githubAPIVersion is sent in X-GitHub-Api-Version on every request.
const githubAPIVersion = "2022-11-28"

type githubAdapter struct {
	client *utils.HTTPClient
	owner  string

	logger *logger.Logger
}

// githubRepository is the subset of the GitHub repository object we read.
type githubRepository struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// githubCommit is the subset of the GitHub commit object we read.
type githubCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  *struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// NewGitHubAdapter constructs the REST implementation of [GitHubAdapter].
// It normalises and validates cfg.BaseURL and configures the underlying
// HTTP client with the request timeout and, when set, the access token.
func NewGitHubAdapter(cfg config.GitHub, log *logger.Logger) (GitHubAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if strings.TrimSpace(cfg.Owner) == "" {
		return nil, fmt.Errorf("github owner is required")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", githubAPIVersion)
	if token := strings.TrimSpace(cfg.Token); token != "" {
		client.SetAuthToken(token)
	}

	return &githubAdapter{client: client, owner: cfg.Owner, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListRepositories implements [GitHubAdapter] with
// GET /users/{owner}/repos.
func (g *githubAdapter) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	var repos []githubRepository

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("owner", g.owner).
		SetResult(&repos).
		Get("/users/{owner}/repos")
	if err != nil {
		return nil, fmt.Errorf("list repositories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, models.Repository{
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

// ListCommits implements [GitHubAdapter] with
// GET /repos/{owner}/{repo}/commits.
func (g *githubAdapter) ListCommits(ctx context.Context, repoName string) ([]models.Commit, error) {
	var commits []githubCommit

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"owner": g.owner, "repo": repoName}).
		SetResult(&commits).
		Get("/repos/{owner}/{repo}/commits")
	if err != nil {
		return nil, fmt.Errorf("list commits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make([]models.Commit, 0, len(commits))
	for _, c := range commits {
		commit := models.Commit{SHA: c.SHA, Message: c.Commit.Message}
		if c.Commit.Author != nil {
			commit.Author = c.Commit.Author.Name
			commit.Date = c.Commit.Author.Date
		}
		out = append(out, commit)
	}
	return out, nil
}
