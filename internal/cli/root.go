// Package cli wires the gush commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gush.dev/gush/internal/cli/common"
	"gush.dev/gush/internal/cli/pullrequest"
	"gush.dev/gush/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	globals := &common.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "gush",
		Short: "Gush streamlines contributing to GitHub projects from the command line",
		Long: `Gush streamlines contributing to GitHub projects from the command line.

Configuration is read from ~/.gush.yml and GUSH_* environment variables.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			tui.ConfigureColors()
		},
	}

	common.AddGlobalFlags(rootCmd, globals)

	rootCmd.AddCommand(pullrequest.NewCreateCmd())
	rootCmd.AddCommand(pullrequest.NewPatOnTheBackCmd())

	return rootCmd
}
