package purger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"batbroom/internal/logging"
	"batbroom/pkg/pathtmpl"
)

// Purger deletes the filesystem entries a concrete path or pattern selects.
// Failures removing individual matches are skipped and only lower the count;
// nothing it does returns an error to the caller.
type Purger struct {
	fs     afero.Fs
	logger *log.Logger
}

// New returns a Purger operating on fsys. A nil logger discards output.
func New(fsys afero.Fs, logger *log.Logger) *Purger {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Purger{fs: fsys, logger: logger}
}

// NewOS returns a Purger over the host filesystem.
func NewOS(logger *log.Logger) *Purger {
	return New(afero.NewOsFs(), logger)
}

// Purge removes what path selects and classifies the result.
func (p *Purger) Purge(path string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("purge panicked", "path", path, "panic", r)
			out = Failed(fmt.Sprint(r))
		}
	}()

	switch pathtmpl.Classify(path) {
	case pathtmpl.KindLiteral:
		return p.purgeLiteral(path)
	case pathtmpl.KindDirContents:
		dir, _ := pathtmpl.DirContentsRoot(path)
		return p.purgeDirContents(dir)
	default:
		return p.purgeGlob(path)
	}
}

func (p *Purger) purgeLiteral(path string) Outcome {
	if ok, err := p.exists(filepath.Dir(path)); err != nil {
		return Failed(err.Error())
	} else if !ok {
		return NotFound()
	}

	info, err := p.lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty()
		}
		return Failed(err.Error())
	}

	if info.IsDir() {
		p.removeTree(path)
		return Cleaned(1)
	}
	if err := p.fs.Remove(path); err != nil {
		p.logger.Warn("cannot remove target", "path", path, "err", err)
		return Failed(ReasonAccessDenied)
	}
	return Cleaned(1)
}

func (p *Purger) purgeDirContents(dir string) Outcome {
	info, err := p.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NotFound()
		}
		return Failed(err.Error())
	}
	if !info.IsDir() {
		return Failed(fmt.Sprintf("%s is not a directory", dir))
	}

	children, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return Failed(err.Error())
	}

	count := 0
	for _, child := range children {
		if p.removeEntry(filepath.Join(dir, child.Name()), child.IsDir()) {
			count++
		}
	}
	return tally(count)
}

func (p *Purger) purgeGlob(pattern string) Outcome {
	if prefix := pathtmpl.StaticPrefix(pattern); prefix != "" {
		if ok, err := p.exists(prefix); err != nil {
			return Failed(err.Error())
		} else if !ok {
			return NotFound()
		}
	}

	matches, err := afero.Glob(p.fs, pattern)
	if err != nil {
		return Failed(err.Error())
	}

	count := 0
	for _, match := range matches {
		if hiddenMatch(pattern, match) {
			p.logger.Debug("skipping hidden match", "path", match)
			continue
		}
		info, err := p.lstat(match)
		if err != nil {
			p.logger.Debug("match vanished", "path", match, "err", err)
			continue
		}
		if p.removeEntry(match, info.IsDir()) {
			count++
		}
	}
	return tally(count)
}

// removeEntry deletes a file, or a directory tree best-effort. A directory
// always counts as removed once its removal has been started.
func (p *Purger) removeEntry(path string, isDir bool) bool {
	if isDir {
		p.removeTree(path)
		return true
	}
	if err := p.fs.Remove(path); err != nil {
		p.logger.Debug("skipping", "path", path, "err", err)
		return false
	}
	return true
}

func (p *Purger) removeTree(path string) {
	children, err := afero.ReadDir(p.fs, path)
	if err != nil {
		p.logger.Debug("cannot list directory", "path", path, "err", err)
	}
	for _, child := range children {
		childPath := filepath.Join(path, child.Name())
		if child.IsDir() {
			p.removeTree(childPath)
			continue
		}
		if err := p.fs.Remove(childPath); err != nil {
			p.logger.Debug("skipping", "path", childPath, "err", err)
		}
	}
	if err := p.fs.Remove(path); err != nil {
		p.logger.Debug("directory left behind", "path", path, "err", err)
	}
}

func (p *Purger) exists(path string) (bool, error) {
	_, err := p.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (p *Purger) lstat(path string) (os.FileInfo, error) {
	if l, ok := p.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return p.fs.Stat(path)
}

// hiddenMatch reports whether a wildcard segment of pattern matched a
// dot-prefixed name. Such names are only selected by segments that start
// with a dot themselves.
func hiddenMatch(pattern, match string) bool {
	sep := string(filepath.Separator)
	segs := strings.Split(filepath.Clean(pattern), sep)
	names := strings.Split(filepath.Clean(match), sep)
	if len(segs) != len(names) {
		return false
	}
	for i, seg := range segs {
		if pathtmpl.HasWildcard(seg) && !strings.HasPrefix(seg, ".") && strings.HasPrefix(names[i], ".") {
			return true
		}
	}
	return false
}
