// GitHub REST API client for the issues CLI and the OAuth sign-in demo
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/tkowalski/go-htmx-examples/internal/models"
	"github.com/tkowalski/go-htmx-examples/internal/shared"
)

// issuesPerPage matches the GitHub default page size used by the CLI.
const issuesPerPage = 30

// GithubService provides methods for the subset of the GitHub REST API the
// demos use: listing repository issues and resolving the authenticated user.
// Outbound calls share a rate limiter so the CLI stays inside GitHub's
// secondary rate limits.
type GithubService struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGithubService creates a GitHub client. token may be empty for
// unauthenticated (public) access; rps bounds requests per second.
func NewGithubService(baseURL, token string, client *http.Client, rps float64) *GithubService {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if rps <= 0 {
		rps = 5
	}

	return &GithubService{
		baseURL:    baseURL,
		token:      token,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// ListIssues retrieves issues for org/repo in the given state ("open",
// "closed", or "all"). Pull requests are filtered out: the issues endpoint
// returns them too, marked by a pull_request key.
func (s *GithubService) ListIssues(ctx context.Context, org, repo, state string) ([]models.Issue, error) {
	switch state {
	case "open", "closed", "all":
	default:
		return nil, fmt.Errorf("%w: state must be open, closed, or all, got %q", shared.ErrInvalidArgument, state)
	}
	if org == "" || repo == "" {
		return nil, fmt.Errorf("%w: org and repo are required", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("state", state)
	params.Set("per_page", fmt.Sprintf("%d", issuesPerPage))

	body, status, err := s.get(ctx, fmt.Sprintf("/repos/%s/%s/issues", org, repo), params, s.token)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s", shared.ErrRepoNotFound, org, repo)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, status, string(body))
	}

	var raw []models.Issue
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode issues: %w", err)
	}

	issues := make([]models.Issue, 0, len(raw))
	for _, issue := range raw {
		if issue.PullRequest != nil {
			continue
		}
		issues = append(issues, issue)
	}

	return issues, nil
}

// AuthenticatedUser resolves the user owning the given OAuth token.
// Used by the sign-in demo after the code exchange.
func (s *GithubService) AuthenticatedUser(ctx context.Context, token string) (*models.GitHubUser, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing access token", shared.ErrNotAuthenticated)
	}

	body, status, err := s.get(ctx, "/user", nil, token)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, status, string(body))
	}

	var user models.GitHubUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}

func (s *GithubService) get(ctx context.Context, path string, params url.Values, token string) ([]byte, int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	fullURL := s.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
