package purger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denyFs refuses to remove the listed paths, as a locked or protected file
// would on a real system.
type denyFs struct {
	afero.Fs
	denied map[string]bool
}

func newDenyFs(paths ...string) *denyFs {
	d := &denyFs{Fs: afero.NewOsFs(), denied: map[string]bool{}}
	for _, p := range paths {
		d.denied[filepath.Clean(p)] = true
	}
	return d
}

func (d *denyFs) Remove(name string) error {
	if d.denied[filepath.Clean(name)] {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Remove(name)
}

type panicFs struct {
	afero.Fs
}

func (panicFs) Stat(string) (os.FileInfo, error) {
	panic("disk on fire")
}

func writeFiles(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	return err == nil
}

func TestPurgeDirContentsRemovesImmediateChildrenOnly(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Temp")
	writeFiles(t, dir, "a.tmp", "b.tmp", "sub/deep/c.tmp", "sub/d.tmp")

	out := NewOS(nil).Purge(filepath.Join(dir, "*"))

	assert.Equal(t, Cleaned(3), out)
	assert.True(t, exists(t, dir), "directory itself must survive")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurgeDirContentsAcceptsLegacySuffix(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "x.log", "y")

	out := NewOS(nil).Purge(filepath.Join(root, "*.*"))

	assert.Equal(t, Cleaned(2), out)
}

func TestPurgeDirContentsMissingDirectory(t *testing.T) {
	root := t.TempDir()

	out := NewOS(nil).Purge(filepath.Join(root, "Prefetch", "*"))

	assert.Equal(t, NotFound(), out)
}

func TestPurgeIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Temp/a", "Temp/b")
	p := NewOS(nil)
	pattern := filepath.Join(root, "Temp", "*")

	assert.Equal(t, Cleaned(2), p.Purge(pattern))
	assert.Equal(t, Empty(), p.Purge(pattern))
	assert.Equal(t, Empty(), p.Purge(pattern))
}

func TestPurgeDirContentsSkipsDeniedFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Temp")
	writeFiles(t, dir, "a", "b", "locked", "c")

	p := New(newDenyFs(filepath.Join(dir, "locked")), nil)
	out := p.Purge(filepath.Join(dir, "*"))

	assert.Equal(t, Cleaned(3), out)
	assert.True(t, exists(t, filepath.Join(dir, "locked")))
	assert.False(t, exists(t, filepath.Join(dir, "a")))
}

func TestPurgeSingleDeniedFileYieldsEmpty(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Temp/locked")

	p := New(newDenyFs(filepath.Join(root, "Temp", "locked")), nil)

	assert.Equal(t, Empty(), p.Purge(filepath.Join(root, "Temp", "*")))
}

func TestPurgeNestedFailureKeepsRemovingSiblings(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Cache")
	writeFiles(t, dir, "blob/one", "blob/locked", "blob/two", "other")

	p := New(newDenyFs(filepath.Join(dir, "blob", "locked")), nil)
	out := p.Purge(filepath.Join(dir, "*"))

	assert.Equal(t, Cleaned(2), out)
	assert.True(t, exists(t, filepath.Join(dir, "blob", "locked")))
	assert.False(t, exists(t, filepath.Join(dir, "blob", "one")))
	assert.False(t, exists(t, filepath.Join(dir, "blob", "two")))
	assert.False(t, exists(t, filepath.Join(dir, "other")))
}

func TestPurgeGlobAcrossLevels(t *testing.T) {
	root := t.TempDir()
	profiles := filepath.Join(root, "Profiles")
	writeFiles(t, profiles,
		"abc.default/cache2/entries/1",
		"abc.default/cache2/index",
		"xyz.release/cache2/doomed",
		"xyz.release/prefs.js",
		"empty.profile/times.json",
	)

	out := NewOS(nil).Purge(filepath.Join(profiles, "*", "cache2", "*"))

	assert.Equal(t, Cleaned(3), out)
	assert.True(t, exists(t, filepath.Join(profiles, "abc.default", "cache2")))
	assert.True(t, exists(t, filepath.Join(profiles, "xyz.release", "prefs.js")))
	assert.True(t, exists(t, filepath.Join(profiles, "empty.profile", "times.json")))
	assert.False(t, exists(t, filepath.Join(profiles, "abc.default", "cache2", "entries")))
	assert.False(t, exists(t, filepath.Join(profiles, "xyz.release", "cache2", "doomed")))
}

func TestPurgeGlobNoMatches(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Packages/app/LocalState/x")

	assert.Equal(t, Empty(), NewOS(nil).Purge(filepath.Join(root, "Packages", "*", "TempState", "*")))
}

func TestPurgeGlobMissingBase(t *testing.T) {
	root := t.TempDir()

	assert.Equal(t, NotFound(), NewOS(nil).Purge(filepath.Join(root, "Packages", "*", "TempState", "*")))
}

func TestPurgeGlobSkipsDeniedMatch(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "logs/a.log", "logs/b.log", "logs/keep.txt")

	p := New(newDenyFs(filepath.Join(root, "logs", "b.log")), nil)

	assert.Equal(t, Cleaned(1), p.Purge(filepath.Join(root, "logs", "*.log")))
	assert.True(t, exists(t, filepath.Join(root, "logs", "keep.txt")))
}

func TestPurgeGlobLeavesDotNames(t *testing.T) {
	root := t.TempDir()
	profiles := filepath.Join(root, "Profiles")
	writeFiles(t, profiles,
		"abc.default/cache2/index",
		"abc.default/cache2/.lock",
		".sync/cache2/state",
	)

	out := NewOS(nil).Purge(filepath.Join(profiles, "*", "cache2", "*"))

	assert.Equal(t, Cleaned(1), out)
	assert.False(t, exists(t, filepath.Join(profiles, "abc.default", "cache2", "index")))
	assert.True(t, exists(t, filepath.Join(profiles, "abc.default", "cache2", ".lock")))
	assert.True(t, exists(t, filepath.Join(profiles, ".sync", "cache2", "state")))
}

func TestPurgeGlobDotSegmentSelectsDotNames(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "cache/.tmp1", "cache/.tmp2", "cache/keep")

	assert.Equal(t, Cleaned(2), NewOS(nil).Purge(filepath.Join(root, "cache", ".tmp*")))
	assert.True(t, exists(t, filepath.Join(root, "cache", "keep")))
}

func TestPurgeLiteralFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Local/IconCache.db")
	target := filepath.Join(root, "Local", "IconCache.db")

	assert.Equal(t, Cleaned(1), NewOS(nil).Purge(target))
	assert.False(t, exists(t, target))
	assert.Equal(t, Empty(), NewOS(nil).Purge(target))
}

func TestPurgeLiteralDirectory(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "cache/a/b", "cache/c")

	assert.Equal(t, Cleaned(1), NewOS(nil).Purge(filepath.Join(root, "cache")))
	assert.False(t, exists(t, filepath.Join(root, "cache")))
}

func TestPurgeLiteralMissingParent(t *testing.T) {
	root := t.TempDir()

	assert.Equal(t, NotFound(), NewOS(nil).Purge(filepath.Join(root, "nope", "IconCache.db")))
}

func TestPurgeLiteralDenied(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "IconCache.db")
	target := filepath.Join(root, "IconCache.db")

	out := New(newDenyFs(target), nil).Purge(target)

	assert.Equal(t, Failed(ReasonAccessDenied), out)
	assert.False(t, out.Successful())
	assert.True(t, exists(t, target))
}

func TestPurgeDirContentsOnFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "notadir")

	out := NewOS(nil).Purge(filepath.Join(root, "notadir", "*"))

	assert.Equal(t, KindFailed, out.Kind)
}

func TestPurgeRecoversFromPanics(t *testing.T) {
	p := New(panicFs{Fs: afero.NewMemMapFs()}, nil)

	out := p.Purge(filepath.FromSlash("/win/Temp/*"))

	assert.Equal(t, Failed("disk on fire"), out)
}

func TestPurgeOnMemoryFilesystem(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := filepath.FromSlash("/win/Temp")
	require.NoError(t, fsys.MkdirAll(dir, 0o755))
	for _, name := range []string{"a", "b"} {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, name), []byte("x"), 0o644))
	}

	assert.Equal(t, Cleaned(2), New(fsys, nil).Purge(filepath.Join(dir, "*")))
}

func TestOutcomeText(t *testing.T) {
	assert.Equal(t, "Path not found, skipping", NotFound().String())
	assert.Equal(t, "No files to clean", Empty().String())
	assert.Equal(t, "Cleaned successfully (4 items)", Cleaned(4).String())
	assert.Equal(t, "Access denied or file in use", Failed(ReasonAccessDenied).String())
	assert.Equal(t, "Error: boom", Failed("boom").String())
	assert.True(t, Empty().Successful())
	assert.True(t, NotFound().Successful())
}
