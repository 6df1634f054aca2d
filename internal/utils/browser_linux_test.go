//go:build linux

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrowserCommand(t *testing.T) {
	name, args := browserCommand("https://github.com/acme/widgets/pull/1")
	require.Equal(t, "xdg-open", name)
	require.Equal(t, []string{"https://github.com/acme/widgets/pull/1"}, args)
}
