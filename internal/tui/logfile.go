package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path of the log file.
// GUSH_LOG_FILE wins over configured; an empty result disables file logging.
func GetLogFilePath(configured string) string {
	if customPath := os.Getenv("GUSH_LOG_FILE"); customPath != "" {
		return customPath
	}
	if configured == "" {
		return ""
	}
	if configured[0] == '~' {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, configured[1:])
		}
	}
	return configured
}
