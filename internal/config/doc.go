// Package config loads gush configuration.
//
// Settings come from, in increasing priority:
//   - built-in defaults
//   - the YAML configuration file (~/.gush.yml unless another path is given)
//   - GUSH_ prefixed environment variables, with dots replaced by underscores
//     (GUSH_GITHUB_USERNAME overrides github.username)
package config
