// Package testhelpers provides shared fixtures for gush tests.
package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
)

// Mock endpoint names used as keys of MockGitHubServerConfig.FailStatus
const (
	EndpointCreatePullRequest = "create-pull-request"
	EndpointGetPullRequest    = "get-pull-request"
	EndpointCreateComment     = "create-comment"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// PRs maps PR numbers to PR data served by the get endpoint
	PRs map[int]*github.PullRequest
	// CreatedPRs stores the create requests that were received
	CreatedPRs []*github.NewPullRequest
	// Comments maps PR numbers to the comment bodies posted on them
	Comments map[int][]string
	// FailStatus makes an endpoint answer with the given HTTP status
	FailStatus map[string]int
	// Owner and Repo for the mock server
	Owner string
	Repo  string

	mu sync.Mutex
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		PRs:        make(map[int]*github.PullRequest),
		Comments:   make(map[int][]string),
		FailStatus: make(map[string]int),
		Owner:      "owner",
		Repo:       "repo",
	}
}

// AddPullRequest registers a PR authored by login so the get endpoint can serve it
func (c *MockGitHubServerConfig) AddPullRequest(number int, login string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PRs[number] = &github.PullRequest{
		Number:  github.Int(number),
		User:    &github.User{Login: github.String(login)},
		HTMLURL: github.String(c.pullURL(number)),
	}
}

func (c *MockGitHubServerConfig) pullURL(number int) string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.Owner, c.Repo, number)
}

// fail writes the configured failure for endpoint and reports whether it did
func (c *MockGitHubServerConfig) fail(w http.ResponseWriter, endpoint string) bool {
	status, ok := c.FailStatus[endpoint]
	if !ok {
		return false
	}
	writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
	return true
}

// NewMockGitHubServer creates an httptest server that mocks GitHub API endpoints
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	base := "/repos/" + config.Owner + "/" + config.Repo
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+base+"/pulls", func(w http.ResponseWriter, r *http.Request) {
		config.mu.Lock()
		defer config.mu.Unlock()
		if config.fail(w, EndpointCreatePullRequest) {
			return
		}

		var newPR github.NewPullRequest
		if err := json.NewDecoder(r.Body).Decode(&newPR); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		config.CreatedPRs = append(config.CreatedPRs, &newPR)
		prNumber := len(config.CreatedPRs)
		pr := &github.PullRequest{
			Number:  github.Int(prNumber),
			Title:   newPR.Title,
			Body:    newPR.Body,
			Head:    &github.PullRequestBranch{Ref: newPR.Head},
			Base:    &github.PullRequestBranch{Ref: newPR.Base},
			Draft:   newPR.Draft,
			State:   github.String("open"),
			HTMLURL: github.String(config.pullURL(prNumber)),
		}
		config.PRs[prNumber] = pr

		writeJSON(w, http.StatusCreated, pr)
	})

	mux.HandleFunc("GET "+base+"/pulls/{number}", func(w http.ResponseWriter, r *http.Request) {
		config.mu.Lock()
		defer config.mu.Unlock()
		if config.fail(w, EndpointGetPullRequest) {
			return
		}

		number, err := strconv.Atoi(r.PathValue("number"))
		if err != nil {
			http.Error(w, "Invalid PR number", http.StatusBadRequest)
			return
		}

		pr, ok := config.PRs[number]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			return
		}

		writeJSON(w, http.StatusOK, pr)
	})

	mux.HandleFunc("POST "+base+"/issues/{number}/comments", func(w http.ResponseWriter, r *http.Request) {
		config.mu.Lock()
		defer config.mu.Unlock()
		if config.fail(w, EndpointCreateComment) {
			return
		}

		number, err := strconv.Atoi(r.PathValue("number"))
		if err != nil {
			http.Error(w, "Invalid issue number", http.StatusBadRequest)
			return
		}

		var comment github.IssueComment
		if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		config.Comments[number] = append(config.Comments[number], comment.GetBody())
		id := int64(len(config.Comments[number]))
		writeJSON(w, http.StatusCreated, &github.IssueComment{
			ID:      github.Int64(id),
			Body:    comment.Body,
			HTMLURL: github.String(fmt.Sprintf("%s#issuecomment-%d", config.pullURL(number), id)),
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, fmt.Sprintf("Unhandled path: %s (method: %s)", r.URL.Path, r.Method), http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client, config.Owner, config.Repo
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
