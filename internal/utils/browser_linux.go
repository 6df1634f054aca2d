//go:build linux

package utils

func browserCommand(url string) (string, []string) {
	return "xdg-open", []string{url}
}
