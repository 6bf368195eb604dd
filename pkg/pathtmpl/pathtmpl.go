package pathtmpl

import (
	"os"
	"path/filepath"
	"strings"
)

// SystemRootPlaceholder is the template token for the OS installation root.
const SystemRootPlaceholder = "%SystemRoot%"

// DefaultSystemRoot is substituted for SystemRootPlaceholder when the
// SystemRoot variable is not set.
const DefaultSystemRoot = `C:\Windows`

// LookupFunc reports the value of an environment variable.
type LookupFunc func(name string) (string, bool)

// Resolver expands path templates against an environment.
type Resolver struct {
	Lookup LookupFunc
}

// NewResolver returns a Resolver reading the process environment.
func NewResolver() Resolver {
	return Resolver{Lookup: os.LookupEnv}
}

// Expand substitutes %NAME% tokens in template. Tokens naming unset
// variables are kept verbatim. The %SystemRoot% token always resolves,
// falling back to DefaultSystemRoot.
func (r Resolver) Expand(template string) string {
	if !strings.Contains(template, SystemRootPlaceholder) {
		return r.expandVars(template)
	}

	root, ok := r.lookup("SystemRoot")
	if !ok {
		root = DefaultSystemRoot
	}

	parts := strings.Split(template, SystemRootPlaceholder)
	for i, part := range parts {
		parts[i] = r.expandVars(part)
	}
	return strings.Join(parts, root)
}

// Resolve expands template and converts it to host separators.
func (r Resolver) Resolve(template string) string {
	return Native(r.Expand(template))
}

// Expand resolves template against the process environment.
func Expand(template string) string {
	return NewResolver().Expand(template)
}

func (r Resolver) lookup(name string) (string, bool) {
	if r.Lookup == nil {
		return os.LookupEnv(name)
	}
	return r.Lookup(name)
}

func (r Resolver) expandVars(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			b.WriteByte('%')
			i++
			continue
		}
		end := strings.IndexByte(s[i+1:], '%')
		if end < 0 {
			b.WriteString(s[i:])
			break
		}
		name := s[i+1 : i+1+end]
		if value, ok := r.lookup(name); ok {
			b.WriteString(value)
		} else {
			b.WriteString("%" + name + "%")
		}
		i += end + 1
	}
	return b.String()
}

// Native rewrites template separators as host separators.
func Native(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
}
