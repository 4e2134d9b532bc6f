//go:build windows

package locale

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// System returns the user's preferred UI language, falling back to the
// environment when Windows reports none.
func System() (string, error) {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil {
		return "", errors.Wrap(err, "query preferred UI languages")
	}
	for _, l := range langs {
		if n, err := Normalize(l); err == nil {
			return n, nil
		}
	}
	return FromEnv(os.Getenv)
}
