// Package git inspects the local repository using go-git.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotOnBranch indicates that HEAD is detached
var ErrNotOnBranch = errors.New("not on a branch")

// Repository is a local git repository
type Repository struct {
	repo *gogit.Repository
	root string
}

// OpenRepository opens the repository containing dir
func OpenRepository(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// Root returns the root directory of the worktree
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the short name of the checked out branch
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", ErrNotOnBranch
	}
	return head.Target().Short(), nil
}

// RemoteURL returns the first URL configured for the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

// OriginInfo parses the origin remote into hostname, owner and repository name
func (r *Repository) OriginInfo() (*RemoteInfo, error) {
	remoteURL, err := r.RemoteURL("origin")
	if err != nil {
		return nil, err
	}
	return ParseGitHubRemoteURL(remoteURL)
}
