package github

import (
	"context"

	"github.com/google/go-github/v62/github"

	gusherrors "gush.dev/gush/internal/errors"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a RealClient authenticated with token against hostname
func NewRealClient(ctx context.Context, hostname, token string) (*RealClient, error) {
	client, err := createGitHubClient(ctx, hostname, token)
	if err != nil {
		return nil, err
	}
	return &RealClient{client: client}, nil
}

// NewClientFromGitHub wraps an already configured go-github client
func NewClientFromGitHub(client *github.Client) *RealClient {
	return &RealClient{client: client}
}

// CreatePullRequest creates a new pull request
func (c *RealClient) CreatePullRequest(ctx context.Context, owner, repo string, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}

	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	createdPR, _, err := c.client.PullRequests.Create(ctx, owner, repo, pr)
	if err != nil {
		return nil, gusherrors.NewRemoteAPIError("create pull request", err)
	}

	return toPullRequestInfo(createdPR), nil
}

// GetPullRequest fetches a pull request by number
func (c *RealClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequestInfo, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, gusherrors.NewRemoteAPIError("show pull request", err)
	}

	return toPullRequestInfo(pr), nil
}

// CreateIssueComment posts a comment on the issue thread of a pull request
func (c *RealClient) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (*CommentInfo, error) {
	comment, _, err := c.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, gusherrors.NewRemoteAPIError("create issue comment", err)
	}

	return &CommentInfo{
		ID:      comment.GetID(),
		HTMLURL: comment.GetHTMLURL(),
		Body:    comment.GetBody(),
	}, nil
}

// toPullRequestInfo converts a github.PullRequest to PullRequestInfo
func toPullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	if pr == nil {
		return nil
	}

	info := &PullRequestInfo{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		Body:    pr.GetBody(),
		State:   pr.GetState(),
	}

	if pr.Base != nil {
		info.Base = pr.Base.GetRef()
	}
	if pr.Head != nil {
		info.Head = pr.Head.GetRef()
	}
	if pr.User != nil {
		info.AuthorLogin = pr.User.GetLogin()
	}

	return info
}
