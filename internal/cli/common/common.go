// Package common provides shared helper functions for CLI commands.
package common

import (
	"fmt"

	"github.com/spf13/cobra"

	"gush.dev/gush/internal/runtime"
)

// Persistent flag names
const (
	FlagOrg    = "org"
	FlagRepo   = "repo"
	FlagConfig = "config"
	FlagDebug  = "debug"
)

// GlobalOptions holds the persistent flags shared by every command
type GlobalOptions struct {
	Org        string
	Repo       string
	ConfigPath string
	Debug      bool
}

// AddGlobalFlags registers the persistent flags on the root command
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&opts.Org, FlagOrg, "", "Organization owning the upstream repository (defaults to the origin remote)")
	cmd.PersistentFlags().StringVar(&opts.Repo, FlagRepo, "", "Upstream repository name (defaults to the origin remote)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, FlagConfig, "", "Path to the configuration file (defaults to ~/.gush.yml)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, FlagDebug, false, "Print debug output")
}

// Globals reads the persistent flags as seen by cmd
func Globals(cmd *cobra.Command) GlobalOptions {
	flags := cmd.Flags()
	org, _ := flags.GetString(FlagOrg)
	repo, _ := flags.GetString(FlagRepo)
	configPath, _ := flags.GetString(FlagConfig)
	debug, _ := flags.GetBool(FlagDebug)
	return GlobalOptions{Org: org, Repo: repo, ConfigPath: configPath, Debug: debug}
}

// ContextFactory builds the runtime context handed to commands.
// Tests replace it to inject fakes.
var ContextFactory = func(cmd *cobra.Command, opts GlobalOptions) (*runtime.Context, error) {
	return runtime.GetContext(cmd.Context(), runtime.Options{
		ConfigPath: opts.ConfigPath,
		Debug:      opts.Debug,
	})
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := ContextFactory(cmd, Globals(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// ResolveRepository returns the upstream organization and repository, taking
// whatever the flags leave unset from the origin remote.
func ResolveRepository(ctx *runtime.Context, opts GlobalOptions) (string, string, error) {
	org, repo := opts.Org, opts.Repo
	if org != "" && repo != "" {
		return org, repo, nil
	}

	if ctx.Repo == nil {
		return "", "", fmt.Errorf("not a git repository: pass --%s and --%s", FlagOrg, FlagRepo)
	}
	info, err := ctx.Repo.OriginInfo()
	if err != nil {
		return "", "", fmt.Errorf("failed to detect repository from the origin remote, pass --%s and --%s: %w", FlagOrg, FlagRepo, err)
	}

	if org == "" {
		org = info.Owner
	}
	if repo == "" {
		repo = info.Repo
	}
	return org, repo, nil
}
