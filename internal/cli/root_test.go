package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/internal/cli/output"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "leapfmt", cmd.Use)
	assert.Equal(t, Version, cmd.Version)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"version", "fmt", "check", "watch", "completion"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "verbose", "output", "jobs"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestRootRunsVersionSubcommand(t *testing.T) {
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "leapfmt v"+Version)
}

func TestRootStdinFormatting(t *testing.T) {
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(bytes.NewBufferString("INSERT INTO t (a) VALUES (1), (2);"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fmt"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "INSERT INTO t (a)\nVALUES\n    (1),\n    (2);", out.String())
}

func TestRootRejectsBadConfigFile(t *testing.T) {
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", "missing.yaml", "version"})

	assert.Error(t, cmd.Execute())
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, config.DefaultExclude, cfg.Exclude)
}

func TestGetRendererFallback(t *testing.T) {
	r := GetRenderer(context.Background())
	require.NotNil(t, r)
	assert.Equal(t, output.ModeText, r.EffectiveMode())
}
