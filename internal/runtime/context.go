// Package runtime provides a context type that holds the collaborators shared by
// every command: output, configuration, the GitHub client, the prompter and the
// command runner.
package runtime

import (
	"context"
	"fmt"

	"gush.dev/gush/internal/config"
	"gush.dev/gush/internal/git"
	"gush.dev/gush/internal/github"
	"gush.dev/gush/internal/process"
	"gush.dev/gush/internal/prompt"
	"gush.dev/gush/internal/tui"
	"gush.dev/gush/internal/utils"
)

// ConfirmFunc asks a yes/no question
type ConfirmFunc func(message string, defaultValue bool) (bool, error)

// EditFunc lets the user edit text
type EditFunc func(content string) (string, error)

// BrowseFunc opens a URL for the user
type BrowseFunc func(url string) error

// Context provides access to collaborators for commands
type Context struct {
	Splog        *tui.Splog
	Config       *config.Config
	GitHubClient github.Client
	Prompter     prompt.Prompter
	Runner       process.Runner
	Confirm      ConfirmFunc
	Edit         EditFunc
	Browse       BrowseFunc
	// Interactive enables animated output
	Interactive bool
	// Repo is nil when gush runs outside a git repository
	Repo *git.Repository
}

// Options controls how GetContext builds a Context
type Options struct {
	ConfigPath string
	Debug      bool
	WorkingDir string
}

// GetContext loads configuration, opens the repository in the working directory
// when there is one and connects to GitHub.
func GetContext(ctx context.Context, opts Options) (_ *Context, err error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath(cfg.Log.File), opts.Debug)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = splog.Close()
		}
	}()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.FileUsed != "" {
		splog.Debug("Using configuration file %s", cfg.FileUsed)
	}

	workingDir := opts.WorkingDir
	if workingDir == "" {
		workingDir = "."
	}

	repo, openErr := git.OpenRepository(workingDir)
	if openErr != nil {
		splog.Debug("No git repository: %v", openErr)
		repo = nil
	}

	runnerDir := ""
	if repo != nil {
		runnerDir = repo.Root()
	}
	runner := process.NewExecRunner(runnerDir)

	token, err := github.ResolveToken(ctx, cfg.GitHub.Token, runner)
	if err != nil {
		return nil, err
	}

	client, err := github.NewRealClient(ctx, cfg.GitHub.Host, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &Context{
		Splog:        splog,
		Config:       cfg,
		GitHubClient: client,
		Prompter:     tui.NewSurveyPrompter(splog),
		Runner:       runner,
		Confirm:      tui.PromptConfirm,
		Edit:         tui.EditDescription,
		Browse:       utils.OpenBrowser,
		Interactive:  tui.IsInteractive(),
		Repo:         repo,
	}, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	if c == nil || c.Splog == nil {
		return nil
	}
	return c.Splog.Close()
}
