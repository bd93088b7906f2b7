package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEmpty(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}

func TestSourceFiles_MatchesTopLevelAndOneDeep(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeEmpty(t, filepath.Join(dir, "main.py"))
	writeEmpty(t, filepath.Join(dir, "util.py"))
	writeEmpty(t, filepath.Join(dir, "plugins", "sample.py"))
	// Two levels deep: outside the legacy file set.
	writeEmpty(t, filepath.Join(dir, "plugins", "extra", "deep.py"))
	writeEmpty(t, filepath.Join(dir, "README.md"))

	files, err := SourceFiles(dir, "*.py")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"main.py",
		filepath.Join("plugins", "sample.py"),
		"util.py",
	}, files)
}

func TestSourceFiles_EmptyDir(t *testing.T) {
	t.Parallel()

	files, err := SourceFiles(t.TempDir(), "*.py")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandCommand_SubstitutesPlaceholder(t *testing.T) {
	t.Parallel()

	got := ExpandCommand([]string{"pylint", "{files}"}, []string{"a.py", "b.py"})
	assert.Equal(t, []string{"pylint", "a.py", "b.py"}, got)
}

func TestExpandCommand_DropsPlaceholder_When_NoFiles(t *testing.T) {
	t.Parallel()

	got := ExpandCommand([]string{"mypy", "{files}"}, nil)
	assert.Equal(t, []string{"mypy"}, got)
}

func TestExpandCommand_LeavesPlainCommandsAlone(t *testing.T) {
	t.Parallel()

	got := ExpandCommand([]string{"pytest", "."}, []string{"a.py"})
	assert.Equal(t, []string{"pytest", "."}, got)
}
