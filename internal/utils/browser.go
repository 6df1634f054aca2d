package utils

import "os/exec"

// OpenBrowser opens a URL in the default browser
func OpenBrowser(url string) error {
	name, args := browserCommand(url)
	return exec.Command(name, args...).Run()
}
