// Package privilege reports whether the process runs with administrative
// rights. Cleanup of system locations usually needs them.
package privilege

// Elevated reports whether the current process is elevated. Probe failures
// are treated as not elevated.
func Elevated() bool {
	ok, err := elevated()
	if err != nil {
		return false
	}
	return ok
}
