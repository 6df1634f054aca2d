//go:build windows

package utils

func browserCommand(url string) (string, []string) {
	return "cmd", []string{"/c", "start", url}
}
