package actions

import (
	"context"
	"fmt"

	"gush.dev/gush/internal/github"
	"gush.dev/gush/internal/runtime"
	"gush.dev/gush/internal/templates"
)

// PatOnTheBackOptions contains options for the pull-request:pat-on-the-back command
type PatOnTheBackOptions struct {
	Org    string
	Repo   string
	Number int
	// Host defaults to github.com
	Host string
	// Templates defaults to templates.Pats
	Templates []string
	// Pick defaults to templates.RandomPicker
	Pick templates.Picker
}

// PatOnTheBackResult describes a posted compliment
type PatOnTheBackResult struct {
	Author         string
	Body           string
	CommentURL     string
	PullRequestURL string
}

// PatOnTheBackAction posts a randomly chosen compliment addressed to the author
// of a pull request.
func PatOnTheBackAction(ctx context.Context, rt *runtime.Context, opts PatOnTheBackOptions) (*PatOnTheBackResult, error) {
	if opts.Number <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", opts.Number)
	}

	set := opts.Templates
	if len(set) == 0 {
		set = templates.Pats
	}
	pick := opts.Pick
	if pick == nil {
		pick = templates.RandomPicker
	}
	host := opts.Host
	if host == "" {
		host = github.DefaultHostname
	}

	pr, err := rt.GitHubClient.GetPullRequest(ctx, opts.Org, opts.Repo, opts.Number)
	if err != nil {
		return nil, err
	}
	if pr.AuthorLogin == "" {
		return nil, fmt.Errorf("pull request #%d has no author", opts.Number)
	}

	body := templates.Render(templates.Pick(set, pick), map[string]string{"author": pr.AuthorLogin})
	rt.Splog.Debug("Patting %s on the back for #%d", pr.AuthorLogin, opts.Number)

	comment, err := rt.GitHubClient.CreateIssueComment(ctx, opts.Org, opts.Repo, opts.Number, body)
	if err != nil {
		return nil, err
	}

	return &PatOnTheBackResult{
		Author:         pr.AuthorLogin,
		Body:           body,
		CommentURL:     comment.HTMLURL,
		PullRequestURL: fmt.Sprintf("https://%s/%s/%s/pull/%d", host, opts.Org, opts.Repo, opts.Number),
	}, nil
}
