// Package binary locates external helper programs.
package binary

import (
	"os/exec"
)

// Available returns the path of the first of names found in the system PATH.
func Available(names ...string) (string, bool) {
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path, true
		}
	}

	return "", false
}
