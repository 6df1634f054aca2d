package actions_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gush.dev/gush/internal/actions"
	gusherrors "gush.dev/gush/internal/errors"
	"gush.dev/gush/internal/github"
	"gush.dev/gush/internal/process"
	"gush.dev/gush/internal/prompt"
	"gush.dev/gush/internal/runtime"
	"gush.dev/gush/internal/tui"
	"gush.dev/gush/testhelpers"
)

// scriptedPrompter replays queued answers per prompt through the shared
// validation loop. Prompts without queued answers get a blank line.
type scriptedPrompter struct {
	answers map[string][]string
	asked   []string
}

func newScriptedPrompter(answers map[string][]string) *scriptedPrompter {
	if answers == nil {
		answers = map[string][]string{}
	}
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) Ask(req prompt.Request) (string, error) {
	return prompt.Ask(func(message string, _ []string) (string, error) {
		p.asked = append(p.asked, message)
		queue := p.answers[message]
		if len(queue) == 0 {
			return "", nil
		}
		p.answers[message] = queue[1:]
		return queue[0], nil
	}, nil, req)
}

// recordingRunner succeeds unless the line has a configured result
type recordingRunner struct {
	results map[string]process.Result
	lines   []string
}

func (r *recordingRunner) Run(_ context.Context, line string) (process.Result, error) {
	r.lines = append(r.lines, line)
	if result, ok := r.results[line]; ok {
		return result, nil
	}
	return process.Result{}, nil
}

type fixture struct {
	rt       *runtime.Context
	prompter *scriptedPrompter
	runner   *recordingRunner
	server   *testhelpers.MockGitHubServerConfig
	out      *bytes.Buffer
}

func newFixture(t *testing.T, owner, repo string, answers map[string][]string) *fixture {
	t.Helper()
	server := testhelpers.NewMockGitHubServerConfig()
	server.Owner = owner
	server.Repo = repo
	client, _, _ := testhelpers.NewMockGitHubClient(t, server)

	out := &bytes.Buffer{}
	f := &fixture{
		prompter: newScriptedPrompter(answers),
		runner:   &recordingRunner{results: map[string]process.Result{}},
		server:   server,
		out:      out,
	}
	f.rt = &runtime.Context{
		Splog:        tui.NewSplogWithWriter(out, true),
		GitHubClient: github.NewClientFromGitHub(client),
		Prompter:     f.prompter,
		Runner:       f.runner,
	}
	return f
}

func defaultOptions() actions.CreatePullRequestOptions {
	return actions.CreatePullRequestOptions{
		Org:        "acme",
		Repo:       "widgets",
		Username:   "alice",
		BranchName: "feature-x",
	}
}

func TestCreatePullRequestAction(t *testing.T) {
	t.Run("defaults produce the documented request", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})

		result, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.NoError(t, err)

		require.Equal(t, []string{
			"git remote add alice git@github.com:alice/widgets.git",
			"git remote update",
			"git push -u alice feature-x",
		}, f.runner.lines)

		require.Len(t, f.server.CreatedPRs, 1)
		created := f.server.CreatedPRs[0]
		require.Equal(t, "acme:master", created.GetBase())
		require.Equal(t, "alice:feature-x", created.GetHead())
		require.Equal(t, "Add widget", created.GetTitle())

		wantBody := strings.Join([]string{
			"| Q | A |",
			"| --- | --- |",
			"| Bug fix? | no |",
			"| New feature? | no |",
			"| BC breaks? | no |",
			"| Deprecations? | no |",
			"| Tests pass? | yes |",
			"| Fixed tickets | #000 |",
			"| License | MIT |",
			"| Doc PR | - |",
		}, "\n") + "\n"
		require.Equal(t, wantBody, created.GetBody())
		require.Equal(t, wantBody, result.Description)

		require.Equal(t, 1, result.PullRequest.Number)
		require.Equal(t, "https://github.com/acme/widgets/pull/1", result.PullRequest.HTMLURL)
		require.Equal(t, "Add widget", result.Title)
		require.Contains(t, f.out.String(), "✓ git push -u alice feature-x")
	})

	t.Run("questions are asked in order before the title", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.NoError(t, err)

		require.Equal(t, []string{
			"Bug fix? [no] ",
			"New feature? [no] ",
			"BC breaks? [no] ",
			"Deprecations? [no] ",
			"Tests pass? [yes] ",
			"Fixed tickets [#000] ",
			"License [MIT] ",
			"Doc PR [-] ",
			actions.TitlePrompt,
		}, f.prompter.asked)
	})

	t.Run("docs repositories get the documentation questionary", func(t *testing.T) {
		f := newFixture(t, "symfony", "symfony-docs", map[string][]string{
			"Doc fix? [yes] ":   {"n"},
			"Applies to [all] ": {"2.8+"},
			actions.TitlePrompt: {"Fix typo"},
		})
		opts := defaultOptions()
		opts.Org = "symfony"
		opts.Repo = "symfony-docs"
		opts.BaseBranch = "2.8"

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.NoError(t, err)

		created := f.server.CreatedPRs[0]
		require.Equal(t, "symfony:2.8", created.GetBase())
		require.Equal(t, strings.Join([]string{
			"| Q | A |",
			"| --- | --- |",
			"| Doc fix? | no |",
			"| New docs? | no |",
			"| Applies to | 2.8+ |",
			"| Fixed tickets | #000 |",
		}, "\n")+"\n", created.GetBody())
		require.Equal(t, "git remote add alice git@github.com:alice/symfony-docs.git", f.runner.lines[0])
	})

	t.Run("existing remote is tolerated", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		f.runner.results["git remote add alice git@github.com:alice/widgets.git"] = process.Result{
			ExitStatus: 3,
			Output:     "error: remote alice already exists.",
		}

		result, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.NoError(t, err)
		require.Len(t, f.runner.lines, 3)
		require.Len(t, result.Report.AllowedFailures, 1)
		require.Len(t, f.server.CreatedPRs, 1)
		require.Contains(t, f.out.String(), "remote alice already exists")
	})

	t.Run("push failure stops before the pull request", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		f.runner.results["git push -u alice feature-x"] = process.Result{ExitStatus: 1, Output: "rejected"}

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.ErrorIs(t, err, gusherrors.ErrCommandFailed)

		var stageErr *gusherrors.StageError
		require.ErrorAs(t, err, &stageErr)
		require.Equal(t, actions.StateSyncingRemote.String(), stageErr.Stage)
		require.Empty(t, f.server.CreatedPRs)
	})

	t.Run("remote update failure skips the push", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		f.runner.results["git remote update"] = process.Result{ExitStatus: 128}

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.ErrorIs(t, err, gusherrors.ErrCommandFailed)
		require.NotContains(t, f.runner.lines, "git push -u alice feature-x")
	})

	t.Run("invalid yes/no answers exhaust their attempts", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			"Bug fix? [no] ": {"maybe", "perhaps", "dunno"},
		})

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.ErrorIs(t, err, gusherrors.ErrInputExhausted)
		require.ErrorIs(t, err, gusherrors.ErrValidation)

		var stageErr *gusherrors.StageError
		require.ErrorAs(t, err, &stageErr)
		require.Equal(t, actions.StateCollectingAnswers.String(), stageErr.Stage)
		require.Empty(t, f.runner.lines)
		require.Empty(t, f.server.CreatedPRs)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", nil)

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.ErrorIs(t, err, gusherrors.ErrValidation)
		require.Empty(t, f.runner.lines)
	})

	t.Run("API failure is reported from the creating stage", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		f.server.FailStatus[testhelpers.EndpointCreatePullRequest] = http.StatusUnprocessableEntity

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, defaultOptions())
		require.ErrorIs(t, err, gusherrors.ErrRemoteAPI)

		var stageErr *gusherrors.StageError
		require.ErrorAs(t, err, &stageErr)
		require.Equal(t, actions.StateCreatingPullRequest.String(), stageErr.Stage)
		require.Len(t, f.runner.lines, 3)
	})

	t.Run("declined confirmation runs nothing", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		var confirmed string
		f.rt.Confirm = func(message string, _ bool) (bool, error) {
			confirmed = message
			return false, nil
		}
		opts := defaultOptions()
		opts.Confirm = true

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.ErrorIs(t, err, gusherrors.ErrAborted)
		require.Contains(t, confirmed, "feature-x")
		require.Empty(t, f.runner.lines)
		require.Contains(t, f.out.String(), "| Bug fix? | no |")
	})

	t.Run("edited description is submitted", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		var seen string
		f.rt.Edit = func(content string) (string, error) {
			seen = content
			return content + "\nCloses #12\n", nil
		}
		opts := defaultOptions()
		opts.Edit = true

		result, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(seen, "| Q | A |"))
		require.True(t, strings.HasSuffix(f.server.CreatedPRs[0].GetBody(), "Closes #12\n"))
		require.Equal(t, f.server.CreatedPRs[0].GetBody(), result.Description)
	})

	t.Run("emptied description aborts", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		f.rt.Edit = func(string) (string, error) { return "  \n", nil }
		opts := defaultOptions()
		opts.Edit = true

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.ErrorIs(t, err, gusherrors.ErrAborted)
		require.Empty(t, f.runner.lines)
	})

	t.Run("enterprise host is used for the fork remote", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", map[string][]string{
			actions.TitlePrompt: {"Add widget"},
		})
		opts := defaultOptions()
		opts.Host = "github.example.com"

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.NoError(t, err)
		require.Equal(t, "git remote add alice git@github.example.com:alice/widgets.git", f.runner.lines[0])
	})

	t.Run("missing branch is refused", func(t *testing.T) {
		f := newFixture(t, "acme", "widgets", nil)
		opts := defaultOptions()
		opts.BranchName = ""

		_, err := actions.CreatePullRequestAction(context.Background(), f.rt, opts)
		require.Error(t, err)
		require.Empty(t, f.prompter.asked)
	})
}

func TestSubmitStateString(t *testing.T) {
	require.Equal(t, "collecting answers", actions.StateCollectingAnswers.String())
	require.Equal(t, "failed", actions.StateFailed.String())
	require.Equal(t, "SubmitState(42)", actions.SubmitState(42).String())
}
