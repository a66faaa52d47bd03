package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, found, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := Config{
		BaseURL:         "http://127.0.0.1:9000/v1",
		TimeoutSeconds:  5,
		DefaultProfile:  "work",
		DefaultCriteria: "workview",
		TableWidth:      100,
	}
	require.NoError(t, SaveConfig(path, want))

	cfg, found, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, cfg)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [broken"), 0o600))
	_, found, err := LoadConfig(path)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestMergeConfigOverrides(t *testing.T) {
	base := Config{BaseURL: "http://base", TimeoutSeconds: 10, DefaultCriteria: "active"}
	override := Config{BaseURL: "http://project", TableWidth: 80}
	merged := MergeConfig(base, override)
	assert.Equal(t, "http://project", merged.BaseURL)
	assert.Equal(t, 10, merged.TimeoutSeconds)
	assert.Equal(t, "active", merged.DefaultCriteria)
	assert.Equal(t, 80, merged.TableWidth)
}

func TestCredentialsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, SaveCredentials(path, Credentials{
		Profiles: map[string]Credential{"default": {Token: "secret"}},
	}))

	creds, found, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "secret", creds.Profiles["default"].Token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCredentialsPathFromConfig(t *testing.T) {
	assert.Equal(t, "/etc/gtd/credentials.yaml", CredentialsPathFromConfig("/etc/gtd/config.yaml"))
}
