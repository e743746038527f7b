package expand_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/lintreport/internal/expand"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("a {}\n"), 0o600))
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "a.css", "sub/b.css", "vendor/c.css", "notes.txt")

	files, err := expand.Files(t.Context(), []string{
		filepath.Join(root, "**", "*.css"),
		filepath.Join(root, "*.css"),
	}, []string{"vendor/"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.css"),
		filepath.Join(root, "sub", "b.css"),
	}, files)
}

func TestFilesSkipsDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "dir.css/inner.txt", "x.css")

	files, err := expand.Files(t.Context(), []string{filepath.Join(root, "*.css"), "  "}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "x.css")}, files)
}

func TestFilesNoMatch(t *testing.T) {
	t.Parallel()

	files, err := expand.Files(t.Context(), []string{filepath.Join(t.TempDir(), "*.scss")}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesBadPattern(t *testing.T) {
	t.Parallel()

	_, err := expand.Files(t.Context(), []string{"styles/[a.css"}, nil)
	require.ErrorIs(t, err, expand.ErrBadPattern)
}

func TestFilesCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := expand.Files(ctx, []string{"*.css"}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
