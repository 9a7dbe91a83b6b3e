package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unalignedSQL = "INSERT INTO t (a, b) VALUES (1, 'x'), (20, 'yy');\n"

const alignedSQL = `INSERT INTO t (a, b)
VALUES
    ( 1, 'x'),
    (20, 'yy');
`

func TestNewFmtCommand(t *testing.T) {
	cmd := NewFmtCommand()

	assert.Equal(t, "fmt [files...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, name := range []string{"all", "dry-run", "backup"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestFmtStdin(t *testing.T) {
	cmd := NewFmtCommand()

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(unalignedSQL))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, alignedSQL, out.String())
	assert.Empty(t, errOut.String())
}

func TestFmtStdinReportsErrors(t *testing.T) {
	cmd := NewFmtCommand()
	// The root command silences these; standalone tests must too.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	src := "INSERT INTO t (a, b) VALUES (1, 2), (3);\n"
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(src))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 statements left unchanged")
	// The malformed statement passes through untouched.
	assert.Equal(t, src, out.String())
	assert.Contains(t, errOut.String(), "<stdin>:")
}

func TestFmtFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(path, []byte(unalignedSQL), 0o600))

	cmd := NewFmtCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, alignedSQL, string(got))
	assert.Contains(t, out.String(), "Formatted: "+path)
	assert.Contains(t, out.String(), "1 formatted, 0 unchanged, 0 with errors")
}

func TestFmtDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(path, []byte(unalignedSQL), 0o600))

	cmd := NewFmtCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--dry-run", path})

	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unalignedSQL, string(got))
	assert.Contains(t, out.String(), "Would format: "+path)
	assert.Contains(t, out.String(), "1 would change, 0 unchanged, 0 with errors")
}

func TestFmtDirectoryArgument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sql"), []byte(unalignedSQL), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.sql"), []byte(alignedSQL), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("not sql"), 0o600))

	cmd := NewFmtCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1 formatted, 1 unchanged, 0 with errors")
}

func TestFmtMissingTarget(t *testing.T) {
	cmd := NewFmtCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.sql")})

	assert.Error(t, cmd.Execute())
}
