package pathtmpl

import (
	"path/filepath"
	"strings"
)

// Kind identifies how a concrete path selects filesystem entries.
type Kind int

const (
	KindLiteral Kind = iota
	KindDirContents
	KindGlob
)

func (k Kind) String() string {
	switch k {
	case KindDirContents:
		return "dir-contents"
	case KindGlob:
		return "glob"
	default:
		return "literal"
	}
}

const wildcards = "*?"

var dirContentsSuffixes = []string{
	string(filepath.Separator) + "*.*",
	string(filepath.Separator) + "*",
}

// Classify reports the Kind of a concrete, host-separated path.
func Classify(path string) Kind {
	if !HasWildcard(path) {
		return KindLiteral
	}
	if _, ok := DirContentsRoot(path); ok {
		return KindDirContents
	}
	return KindGlob
}

// HasWildcard reports whether path contains a glob metacharacter.
func HasWildcard(path string) bool {
	return strings.ContainsAny(path, wildcards)
}

// DirContentsRoot returns the directory whose immediate children path
// selects. ok is false unless path is a trailing "\*" (or legacy "\*.*")
// pattern over a wildcard-free directory.
func DirContentsRoot(path string) (dir string, ok bool) {
	for _, suffix := range dirContentsSuffixes {
		if !strings.HasSuffix(path, suffix) {
			continue
		}
		dir = strings.TrimSuffix(path, suffix)
		if dir == "" || HasWildcard(dir) {
			return "", false
		}
		return dir, true
	}
	return "", false
}

// StaticPrefix returns the longest leading run of wildcard-free segments
// of pattern, or "" when the first segment already holds a wildcard.
func StaticPrefix(pattern string) string {
	sep := string(filepath.Separator)
	segments := strings.Split(pattern, sep)
	n := 0
	for n < len(segments) && !HasWildcard(segments[n]) {
		n++
	}
	if n == len(segments) {
		return pattern
	}
	prefix := strings.Join(segments[:n], sep)
	if prefix == "" && n > 0 {
		return sep
	}
	return prefix
}
