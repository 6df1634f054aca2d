// Package actions provides the business logic behind gush commands.
//
// Each action corresponds to a gush command and orchestrates the questionary,
// the command runner and the GitHub client it is handed.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, Prompter, Runner and GitHubClient
//   - Actions hold no state between calls
//   - Failures are returned wrapped so callers can tell which stage failed
package actions
