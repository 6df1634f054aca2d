package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

const defaultEditor = "vi"

// EditorCommand returns the editor configured through GIT_EDITOR, EDITOR or
// git's core.editor, falling back to vi.
func EditorCommand() string {
	if editor := os.Getenv("GIT_EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	output, err := exec.Command("git", "config", "--get", "core.editor").Output()
	if err == nil {
		if editor := strings.TrimSpace(string(output)); editor != "" {
			return editor
		}
	}
	return defaultEditor
}

// OpenEditor lets the user edit initialContent in their editor and returns the
// result. filenamePattern is passed to os.CreateTemp.
func OpenEditor(initialContent, filenamePattern string) (string, error) {
	tmpFile, err := os.CreateTemp("", filenamePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(initialContent); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	args, err := shell.Fields(EditorCommand(), os.Getenv)
	if err != nil || len(args) == 0 {
		return "", fmt.Errorf("invalid editor command %q", EditorCommand())
	}

	cmd := exec.Command(args[0], append(args[1:], tmpFile.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return string(content), nil
}

// EditDescription opens a pull request description in the editor
func EditDescription(description string) (string, error) {
	return OpenEditor(description, "gush-pr-*.md")
}
