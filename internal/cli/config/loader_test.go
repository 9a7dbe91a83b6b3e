package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultExclude, cfg.Exclude)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.False(t, cfg.Backup)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
exclude:
  - migrations
jobs: 4
backup: true
output: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapfmt.yaml"), []byte(content), 0o600))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"migrations"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Backup)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "leapfmt.yaml", GetConfigFileUsed())
}

func TestLoadConfigExplicitFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 2\n"), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Jobs)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	_, err := LoadConfig("does-not-exist.yaml", nil)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapfmt.yaml"), []byte("output: text\n"), 0o600))
	t.Setenv("LEAPFMT_OUTPUT", "json")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("LEAPFMT_JOBS", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("jobs", DefaultJobs, "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--jobs", "3"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// The changed flag wins; the untouched one falls back to env/defaults.
	assert.Equal(t, 3, cfg.Jobs)
	assert.False(t, cfg.Verbose)
}

func TestFindConfigFilePrefersYaml(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapfmt.yml"), []byte("jobs: 1\n"), 0o600))
	assert.Equal(t, "leapfmt.yml", findConfigFile(""))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "leapfmt.yaml"), []byte("jobs: 1\n"), 0o600))
	assert.Equal(t, "leapfmt.yaml", findConfigFile(""))
}

func TestGetCurrentConfig(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	assert.Nil(t, GetCurrentConfig())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Same(t, cfg, GetCurrentConfig())
}
