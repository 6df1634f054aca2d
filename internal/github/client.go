// Package github provides a client for interacting with the GitHub API.
package github

import "context"

// PullRequestInfo contains information about a pull request
// This is a simplified struct to avoid coupling to go-github library
type PullRequestInfo struct {
	Number      int
	HTMLURL     string
	Title       string
	Body        string
	State       string
	Base        string
	Head        string
	AuthorLogin string
}

// CommentInfo contains information about an issue comment
type CommentInfo struct {
	ID      int64
	HTMLURL string
	Body    string
}

// CreatePROptions contains options for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error)

	// GetPullRequest fetches a pull request by number
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequestInfo, error)

	// CreateIssueComment posts a comment on the issue thread of a pull request
	CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*CommentInfo, error)
}
