// package services defines clients for external HTTP APIs
package services

import (
	"context"

	"github.com/tkowalski/go-htmx-examples/internal/models"
)

// IssueLister is the interface consumed by the CLI and formatter layers.
// [GithubService] is the concrete implementation; tests substitute mocks.
type IssueLister interface {
	// ListIssues retrieves issues for a repository, excluding pull requests.
	// state is one of "open", "closed", or "all".
	ListIssues(ctx context.Context, org, repo, state string) ([]models.Issue, error)
}
