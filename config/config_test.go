package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envlink/envlink/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "default", cfg.Browser.Target)
	assert.False(t, cfg.Notifications)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullFile(t *testing.T) {
	path := testutil.WriteTempFile(t, FileName, `
browser:
  target: none
notifications: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Browser.Target)
	assert.True(t, cfg.Notifications)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := testutil.WriteTempFile(t, FileName, "notifications: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	// Unspecified sections keep their defaults.
	assert.Equal(t, "default", cfg.Browser.Target)
	assert.True(t, cfg.Notifications)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := testutil.WriteTempFile(t, FileName, "browser: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadInvalidTarget(t *testing.T) {
	path := testutil.WriteTempFile(t, FileName, `
browser:
  target: chrome
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser.target")
}
