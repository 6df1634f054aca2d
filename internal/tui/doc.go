// Package tui provides the terminal user interface for gush.
//
// It handles:
//   - Interactive questions and confirmations (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
