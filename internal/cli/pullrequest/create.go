// Package pullrequest provides the pull-request:* commands.
package pullrequest

import (
	"fmt"

	"github.com/spf13/cobra"

	"gush.dev/gush/internal/actions"
	"gush.dev/gush/internal/cli/common"
	"gush.dev/gush/internal/runtime"
	"gush.dev/gush/internal/tui"
)

// NewCreateCmd creates the pull-request:create command
func NewCreateCmd() *cobra.Command {
	var (
		edit    bool
		confirm bool
		web     bool
	)

	cmd := &cobra.Command{
		Use:     "pull-request:create [base_branch]",
		Aliases: []string{"pr:create"},
		Short:   "Push the current branch to your fork and open a pull request",
		Long: `Asks the questionary for the repository, pushes the current branch to a
remote named after your GitHub username and opens a pull request against the
base branch of the upstream repository.

Repositories whose name contains "docs" get the documentation questionary.
The base branch defaults to base_branch from the configuration, or master.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				if ctx.Repo == nil {
					return fmt.Errorf("pull-request:create must be run inside a git repository")
				}

				org, repo, err := common.ResolveRepository(ctx, common.Globals(cmd))
				if err != nil {
					return err
				}

				branch, err := ctx.Repo.CurrentBranch()
				if err != nil {
					return err
				}

				baseBranch := ctx.Config.BaseBranch
				if len(args) == 1 {
					baseBranch = args[0]
				}

				result, err := actions.CreatePullRequestAction(cmd.Context(), ctx, actions.CreatePullRequestOptions{
					Org:        org,
					Repo:       repo,
					BaseBranch: baseBranch,
					Username:   ctx.Config.GitHub.Username,
					BranchName: branch,
					Host:       ctx.Config.GitHub.Host,
					Edit:       edit,
					Confirm:    confirm,
				})
				if err != nil {
					return err
				}

				ctx.Splog.Success("Opened pull request #%d: %s", result.PullRequest.Number, tui.FormatURL(result.PullRequest.HTMLURL))
				if web && ctx.Browse != nil {
					if err := ctx.Browse(result.PullRequest.HTMLURL); err != nil {
						ctx.Splog.Warn("Failed to open browser: %v", err)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Edit the description in your editor before pushing")
	cmd.Flags().BoolVarP(&confirm, "confirm", "c", false, "Show the description and ask before pushing")
	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the pull request in your browser")

	return cmd
}
