//go:build !windows

package locale

import "os"

// System returns the locale of the current process.
func System() (string, error) {
	return FromEnv(os.Getenv)
}
