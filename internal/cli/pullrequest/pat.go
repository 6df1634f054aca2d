package pullrequest

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gush.dev/gush/internal/actions"
	"gush.dev/gush/internal/cli/common"
	"gush.dev/gush/internal/runtime"
	"gush.dev/gush/internal/tui"
)

// NewPatOnTheBackCmd creates the pull-request:pat-on-the-back command
func NewPatOnTheBackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pull-request:pat-on-the-back <pr_number>",
		Aliases:      []string{"pr:pat"},
		Short:        "Thank the author of a pull request with a friendly comment",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid pull request number %q", args[0])
			}

			return common.Run(cmd, func(ctx *runtime.Context) error {
				org, repo, err := common.ResolveRepository(ctx, common.Globals(cmd))
				if err != nil {
					return err
				}

				result, err := actions.PatOnTheBackAction(cmd.Context(), ctx, actions.PatOnTheBackOptions{
					Org:    org,
					Repo:   repo,
					Number: number,
					Host:   ctx.Config.GitHub.Host,
				})
				if err != nil {
					return err
				}

				ctx.Splog.Success("Pat on the back pushed to %s", tui.FormatURL(result.PullRequestURL))
				return nil
			})
		},
	}

	return cmd
}
