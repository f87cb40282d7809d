// Package services implements the GitHub REST API client used by the issues CLI and the OAuth sign-in demo.
//
// # GitHub Implementation
//
// [GithubService] covers the two endpoints the demos need:
//
//   - [GithubService.ListIssues] : repository issues, filtered of pull requests
//     (the issues endpoint returns PRs marked by a pull_request key)
//   - [GithubService.AuthenticatedUser] : the /user endpoint, called with the
//     access token obtained from the OAuth code exchange
//
// A shared [rate.Limiter] bounds outbound request rate. The base URL is
// configurable so tests can point the client at an httptest server.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrRepoNotFound] : 404 from the issues endpoint
//   - [shared.ErrAPIRequest] : any other non-2xx response
//   - [shared.ErrInvalidArgument] : bad state filter
//   - [shared.ErrNotAuthenticated] : missing access token
package services
