package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# fixedhash
bind 0.0.0.0
port 7000
maxclients 16
loadfactor 0.45
ratelimit abc
`
	props := defaultProperties()
	require.NoError(t, parse(strings.NewReader(src), props))
	require.Equal(t, "0.0.0.0", props.Bind)
	require.Equal(t, 7000, props.Port)
	require.Equal(t, 16, props.MaxClients)
	require.Equal(t, 0.45, props.LoadFactor)
	require.Equal(t, 0, props.RateLimit)
	require.Equal(t, "info", props.LogLevel)
	require.Equal(t, "0.0.0.0:7000", props.Address())
}

func TestSetupWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixedhash.conf")
	require.NoError(t, os.WriteFile(path, []byte("port 7001\nloglevel debug\n"), 0o644))
	t.Setenv("FIXEDHASH_PORT", "7002")

	old := Properties
	defer func() { Properties = old }()
	require.NoError(t, SetupConfigProperties(path))
	require.Equal(t, 7002, Properties.Port)
	require.Equal(t, "debug", Properties.LogLevel)
	require.Equal(t, "127.0.0.1", Properties.Bind)
}

func TestSetupMissingFile(t *testing.T) {
	require.Error(t, SetupConfigProperties(filepath.Join(t.TempDir(), "missing.conf")))
}
