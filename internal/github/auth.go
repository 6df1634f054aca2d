package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gush.dev/gush/internal/process"
)

// DefaultHostname is the public GitHub host
const DefaultHostname = "github.com"

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname == "" || hostname == DefaultHostname {
		return client, nil
	}

	// GitHub Enterprise API endpoints
	// REST API: https://hostname/api/v3/
	// Upload API: https://hostname/api/uploads/
	baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
	}
	uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
	if err != nil {
		return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
	}

	client.BaseURL = baseURL
	client.UploadURL = uploadURL

	return client, nil
}

// ResolveToken returns the configured token, falling back to GITHUB_TOKEN and
// then to the gh CLI.
func ResolveToken(ctx context.Context, configured string, runner process.Runner) (string, error) {
	if token := strings.TrimSpace(configured); token != "" {
		return token, nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	result, err := runner.Run(ctx, "gh auth token")
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}
	if result.ExitStatus != 0 {
		return "", fmt.Errorf("failed to get GitHub token: gh exited with status %d", result.ExitStatus)
	}

	token := strings.TrimSpace(result.Output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}

	return token, nil
}
