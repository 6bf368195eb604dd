package pathtmpl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestExpandSubstitutesKnownVariables(t *testing.T) {
	r := Resolver{Lookup: envOf(map[string]string{
		"USERPROFILE": `C:\Users\bat`,
		"TEMP":        `C:\Temp`,
	})}

	assert.Equal(t, `C:\Users\bat\AppData\Local\Temp\*`, r.Expand(`%USERPROFILE%\AppData\Local\Temp\*`))
	assert.Equal(t, `C:\Temp\*`, r.Expand(`%TEMP%\*`))
}

func TestExpandKeepsUnsetVariables(t *testing.T) {
	r := Resolver{Lookup: envOf(nil)}

	assert.Equal(t, `%USERPROFILE%\Recent\*`, r.Expand(`%USERPROFILE%\Recent\*`))
	assert.Equal(t, `50%`, r.Expand(`50%`))
	assert.Equal(t, `a%b`, r.Expand(`a%%b`))
}

func TestExpandSystemRoot(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		in   string
		want string
	}{
		{"unset uses default", nil, `%SystemRoot%\Temp\*`, `C:\Windows\Temp\*`},
		{"empty value is kept", map[string]string{"SystemRoot": ""}, `%SystemRoot%\Logs\*`, `\Logs\*`},
		{"set uses value", map[string]string{"SystemRoot": `D:\WIN`}, `%SystemRoot%\Prefetch\*`, `D:\WIN\Prefetch\*`},
		{"value is not expanded twice", map[string]string{"SystemRoot": `%TEMP%`, "TEMP": "nope"}, `%SystemRoot%\Debug\*`, `%TEMP%\Debug\*`},
		{"other tokens still expand", map[string]string{"X": "x"}, `%X%\%SystemRoot%`, `x\C:\Windows`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{Lookup: envOf(tt.env)}
			assert.Equal(t, tt.want, r.Expand(tt.in))
		})
	}
}

func TestResolveUsesHostSeparators(t *testing.T) {
	r := Resolver{Lookup: envOf(map[string]string{"ROOT": "/srv"})}

	got := r.Resolve(`%ROOT%\Temp\*`)
	assert.Equal(t, filepath.FromSlash("/srv/Temp/*"), got)
}

func TestClassify(t *testing.T) {
	dir := filepath.Join("base", "Temp")

	assert.Equal(t, KindLiteral, Classify(filepath.Join("base", "IconCache.db")))
	assert.Equal(t, KindDirContents, Classify(filepath.Join(dir, "*")))
	assert.Equal(t, KindDirContents, Classify(filepath.Join(dir, "*.*")))
	assert.Equal(t, KindGlob, Classify(filepath.Join("base", "Profiles", "*", "cache2", "*")))
	assert.Equal(t, KindGlob, Classify(filepath.Join(dir, "*.log")))
}

func TestDirContentsRoot(t *testing.T) {
	dir := filepath.Join("base", "Temp")

	got, ok := DirContentsRoot(filepath.Join(dir, "*"))
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	_, ok = DirContentsRoot(filepath.Join("base", "*", "TempState", "*"))
	assert.False(t, ok)
}

func TestStaticPrefix(t *testing.T) {
	sep := string(filepath.Separator)

	assert.Equal(t, sep+filepath.Join("a", "Profiles"), StaticPrefix(sep+filepath.Join("a", "Profiles", "*", "cache2", "*")))
	assert.Equal(t, sep, StaticPrefix(sep+"*"))
	assert.Equal(t, "", StaticPrefix(filepath.Join("*", "x")))
	assert.Equal(t, filepath.Join("a", "b"), StaticPrefix(filepath.Join("a", "b")))
}
