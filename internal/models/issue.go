package models

import "time"

// Issue is a GitHub issue as returned by the REST API's issues endpoint.
// The endpoint also returns pull requests; PullRequest is non-nil for those
// and callers filter them out.
type Issue struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	HTMLURL   string     `json:"html_url"`
	User      IssueUser  `json:"user"`
	Comments  int        `json:"comments"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request,omitempty"`
}

// IssueUser is the author of an issue.
type IssueUser struct {
	Login string `json:"login"`
}

// GitHubUser is the authenticated user as returned by the /user endpoint.
// Used by the OAuth sign-in demo after the token exchange.
type GitHubUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
