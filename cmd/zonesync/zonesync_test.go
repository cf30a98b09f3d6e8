package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

//nolint:paralleltest // environment variables are global
func TestRootCmdEnvDefaults(t *testing.T) {
	t.Setenv("ZONESYNC_MAIL", "hostmaster@example.org")
	t.Setenv("ZONESYNC_DESCRIPTION", "mirrored by zonesync")

	var (
		buf      strings.Builder
		exitCode int
	)
	cmd := newRootCmd(pp.New(&buf), &exitCode)

	require.Equal(t, "hostmaster@example.org", cmd.Flags().Lookup("mail").DefValue)
	require.Equal(t, "mirrored by zonesync", cmd.Flags().Lookup("description").DefValue)

	// explicit flags beat the environment
	require.NoError(t, cmd.ParseFlags([]string{"--mail", "noc@example.org"}))
	require.Equal(t, "noc@example.org", cmd.Flags().Lookup("mail").Value.String())
	require.Equal(t, "mirrored by zonesync", cmd.Flags().Lookup("description").Value.String())
}
