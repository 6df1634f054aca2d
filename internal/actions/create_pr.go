package actions

import (
	"context"
	"fmt"
	"strings"

	"gush.dev/gush/internal/config"
	gusherrors "gush.dev/gush/internal/errors"
	"gush.dev/gush/internal/git"
	"gush.dev/gush/internal/github"
	"gush.dev/gush/internal/output"
	"gush.dev/gush/internal/process"
	"gush.dev/gush/internal/prompt"
	"gush.dev/gush/internal/questionary"
	"gush.dev/gush/internal/runtime"
)

// SubmitState is a stage of pull request creation
type SubmitState int

const (
	StateCollectingAnswers SubmitState = iota
	StateRenderingDescription
	StateSyncingRemote
	StateCreatingPullRequest
	StateDone
	StateFailed
)

func (s SubmitState) String() string {
	switch s {
	case StateCollectingAnswers:
		return "collecting answers"
	case StateRenderingDescription:
		return "rendering description"
	case StateSyncingRemote:
		return "syncing remote"
	case StateCreatingPullRequest:
		return "creating pull request"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("SubmitState(%d)", int(s))
	}
}

// TitlePrompt is asked after the questionary
const TitlePrompt = "PR Title:"

const titleAttempts = 3

// CreatePullRequestOptions contains options for the pull-request:create command
type CreatePullRequestOptions struct {
	// Org owns the upstream repository the pull request targets
	Org string
	// Repo is the upstream repository name
	Repo string
	// BaseBranch defaults to config.DefaultBaseBranch
	BaseBranch string
	// Username owns the fork the branch is pushed to
	Username   string
	BranchName string
	// Host defaults to github.com
	Host string
	// Edit opens the rendered description in an editor
	Edit bool
	// Confirm shows the description and asks before pushing
	Confirm bool
}

// CreatePullRequestResult describes a submitted pull request
type CreatePullRequestResult struct {
	PullRequest *github.PullRequestInfo
	Title       string
	Description string
	Report      *process.Report
}

// SyncRemoteSteps returns the commands that publish branch to the user's fork.
// Adding the remote is allowed to fail since it usually exists already.
func SyncRemoteSteps(host, username, repo, branch string) []process.Step {
	return []process.Step{
		{Line: fmt.Sprintf("git remote add %s %s", username, git.SSHRemoteURL(host, username, repo)), AllowFailure: true},
		{Line: "git remote update"},
		{Line: fmt.Sprintf("git push -u %s %s", username, branch)},
	}
}

// CreatePullRequestAction asks the questionary, pushes the branch to the user's
// fork and opens a pull request from it against the upstream base branch.
func CreatePullRequestAction(ctx context.Context, rt *runtime.Context, opts CreatePullRequestOptions) (result *CreatePullRequestResult, err error) {
	splog := rt.Splog
	state := StateCollectingAnswers

	defer func() {
		if err != nil {
			failedIn := state
			state = StateFailed
			splog.Debug("Pull request submission %s while %s", state, failedIn)
			err = gusherrors.NewStageError(failedIn.String(), err)
		}
	}()

	if opts.Org == "" || opts.Repo == "" {
		return nil, fmt.Errorf("organization and repository are required")
	}
	if opts.Username == "" {
		return nil, fmt.Errorf("github username is required")
	}
	if opts.BranchName == "" {
		return nil, fmt.Errorf("branch name is required")
	}

	baseBranch := opts.BaseBranch
	if baseBranch == "" {
		baseBranch = config.DefaultBaseBranch
	}
	host := opts.Host
	if host == "" {
		host = github.DefaultHostname
	}

	q := questionary.ForRepository(opts.Repo)
	splog.Debug("Using the %s questionary for %s", questionary.KindFor(opts.Repo), opts.Repo)

	rows, err := questionary.Collect(rt.Prompter, q)
	if err != nil {
		return nil, err
	}

	title, err := rt.Prompter.Ask(prompt.Request{
		Prompt:      TitlePrompt,
		Validate:    questionary.NonEmpty,
		MaxAttempts: titleAttempts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read title: %w", err)
	}

	state = StateRenderingDescription
	description := output.RenderAnswerTable(q.Headers(), rows)

	if opts.Edit {
		if rt.Edit == nil {
			return nil, gusherrors.ErrNotInteractive
		}
		edited, err := rt.Edit(description)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(edited) == "" {
			return nil, fmt.Errorf("empty description: %w", gusherrors.ErrAborted)
		}
		description = edited
	}

	if opts.Confirm {
		splog.Page(description)
		if rt.Confirm == nil {
			return nil, gusherrors.ErrNotInteractive
		}
		ok, err := rt.Confirm(fmt.Sprintf("Push %s to %s and open the pull request?", opts.BranchName, opts.Username), true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, gusherrors.ErrAborted
		}
	}

	state = StateSyncingRemote
	splog.Info("Pushing %s to %s...", opts.BranchName, opts.Username)
	steps := SyncRemoteSteps(host, opts.Username, opts.Repo, opts.BranchName)
	progress := output.NewStepProgress(splog, rt.Interactive)
	progress.Start(steps)
	report, err := process.RunObservedSequence(ctx, rt.Runner, steps, splog, progress)
	progress.Complete()
	if err != nil {
		return nil, err
	}

	state = StateCreatingPullRequest
	pr, err := rt.GitHubClient.CreatePullRequest(ctx, opts.Org, opts.Repo, github.CreatePROptions{
		Title: title,
		Body:  description,
		Base:  opts.Org + ":" + baseBranch,
		Head:  opts.Username + ":" + opts.BranchName,
	})
	if err != nil {
		return nil, err
	}

	state = StateDone
	return &CreatePullRequestResult{
		PullRequest: pr,
		Title:       title,
		Description: description,
		Report:      report,
	}, nil
}
