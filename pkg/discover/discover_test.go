package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixture builds a small tree with a nested directory and symlinks:
//
//	a.txt
//	b.txt
//	flink -> a.txt
//	link  -> sub
//	sub/c.log
//	sub/d.txt
func newFixture(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "sub"), 0o755))
	for _, f := range []string{"a.txt", "b.txt", "sub/c.log", "sub/d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, f), []byte("x\n"), 0o644))
	}
	require.NoError(t, os.Symlink(filepath.Join(tmp, "sub"), filepath.Join(tmp, "link")))
	require.NoError(t, os.Symlink(filepath.Join(tmp, "a.txt"), filepath.Join(tmp, "flink")))

	return tmp
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()

	t.Run("walks_directories_recursively", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{tmp}, Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmp, "a.txt"),
			filepath.Join(tmp, "b.txt"),
			filepath.Join(tmp, "sub", "c.log"),
			filepath.Join(tmp, "sub", "d.txt"),
		}, files)
	})

	t.Run("accepts_explicit_files", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{filepath.Join(tmp, "a.txt")}, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tmp, "a.txt")}, files)
	})

	t.Run("deduplicates_repeated_paths", func(t *testing.T) {
		tmp := newFixture(t)
		sub := filepath.Join(tmp, "sub")

		files, err := Discover(ctx, []string{sub, filepath.Join(sub, "c.log"), sub}, Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(sub, "c.log"),
			filepath.Join(sub, "d.txt"),
		}, files)
	})

	t.Run("missing_path_is_an_error", func(t *testing.T) {
		tmp := newFixture(t)

		_, err := Discover(ctx, []string{filepath.Join(tmp, "missing")}, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("exclude_pattern_filters_files", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{tmp}, Options{ExcludePattern: `\.log$`})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmp, "a.txt"),
			filepath.Join(tmp, "b.txt"),
			filepath.Join(tmp, "sub", "d.txt"),
		}, files)
	})

	t.Run("invalid_exclude_pattern_is_an_error", func(t *testing.T) {
		tmp := newFixture(t)

		_, err := Discover(ctx, []string{tmp}, Options{ExcludePattern: "("})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compiling exclude pattern")
	})

	t.Run("ignore_globs_filter_files", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{tmp}, Options{IgnoreGlobs: []string{"**/*.log", "**/b.txt"}})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmp, "a.txt"),
			filepath.Join(tmp, "sub", "d.txt"),
		}, files)
	})

	t.Run("symlinks_are_skipped_by_default", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{filepath.Join(tmp, "flink")}, Options{})
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("follow_symlinks_resolves_targets", func(t *testing.T) {
		tmp := newFixture(t)

		files, err := Discover(ctx, []string{tmp}, Options{FollowSymlinks: true})
		require.NoError(t, err)

		// The symlinked directory is walked under its link name and the
		// real directory is then suppressed as already visited. Symlinks
		// to individual files are reported under their link name.
		assert.Equal(t, []string{
			filepath.Join(tmp, "a.txt"),
			filepath.Join(tmp, "b.txt"),
			filepath.Join(tmp, "flink"),
			filepath.Join(tmp, "link", "c.log"),
			filepath.Join(tmp, "link", "d.txt"),
		}, files)
	})
}
