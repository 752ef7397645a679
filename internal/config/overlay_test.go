package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acdsyn/acdsyn/internal/config"
)

func TestLoadOverlayReadsMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	content := `finance:
  max_components: 25
  compliance: strict
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	overlay, err := config.LoadOverlay(path)
	require.NoError(t, err)
	require.Contains(t, overlay, "finance")

	finance, ok := overlay["finance"].(map[string]any)
	require.True(t, ok, "nested sections should decode as mappings")
	assert.Equal(t, 25, finance["max_components"])
	assert.Equal(t, "strict", finance["compliance"])
}

func TestLoadOverlayMissingPath(t *testing.T) {
	overlay, err := config.LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Nil(t, overlay)
	assert.True(t, errors.Is(err, config.ErrOverlayNotFound))
}

func TestLoadOverlayMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0o600))

	overlay, err := config.LoadOverlay(path)
	require.Error(t, err)
	assert.Nil(t, overlay)
	assert.NotErrorIs(t, err, config.ErrOverlayNotFound)
}
