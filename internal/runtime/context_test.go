package runtime_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gush.dev/gush/internal/runtime"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gush.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGetContext(t *testing.T) {
	t.Setenv("GUSH_LOG_FILE", "")
	t.Setenv("GUSH_GITHUB_USERNAME", "")
	t.Setenv("GUSH_GITHUB_TOKEN", "")

	t.Run("builds every collaborator outside a repository", func(t *testing.T) {
		path := writeConfig(t, "github:\n  username: alice\n  token: secret\nbase_branch: main\n")

		ctx, err := runtime.GetContext(context.Background(), runtime.Options{
			ConfigPath: path,
			WorkingDir: t.TempDir(),
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = ctx.Close() })

		require.Equal(t, "alice", ctx.Config.GitHub.Username)
		require.Equal(t, "main", ctx.Config.BaseBranch)
		require.Nil(t, ctx.Repo)
		require.NotNil(t, ctx.GitHubClient)
		require.NotNil(t, ctx.Prompter)
		require.NotNil(t, ctx.Runner)
		require.NotNil(t, ctx.Confirm)
		require.NotNil(t, ctx.Edit)
		require.NotNil(t, ctx.Browse)
	})

	t.Run("rejects a configuration without username", func(t *testing.T) {
		path := writeConfig(t, "github:\n  token: secret\n")

		_, err := runtime.GetContext(context.Background(), runtime.Options{ConfigPath: path, WorkingDir: t.TempDir()})
		require.ErrorContains(t, err, "github.username")
	})

	t.Run("reports an unreadable configuration file", func(t *testing.T) {
		_, err := runtime.GetContext(context.Background(), runtime.Options{
			ConfigPath: filepath.Join(t.TempDir(), "missing.yml"),
		})
		require.Error(t, err)
	})
}

func TestCloseNil(t *testing.T) {
	var ctx *runtime.Context
	require.NoError(t, ctx.Close())
}
