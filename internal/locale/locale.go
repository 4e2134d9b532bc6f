// Package locale finds and normalises locale keys for the detector.
package locale

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Normalize turns a POSIX or BCP 47 locale such as "pl_PL.UTF-8" or
// "pl-pl" into the canonical tag form "pl-PL".
func Normalize(s string) (string, error) {
	name := s
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "C" || name == "POSIX" {
		return "", errors.Errorf("locale %q has no language", s)
	}
	tag, err := language.Parse(name)
	if err != nil {
		return "", errors.Wrapf(err, "parse locale %q", s)
	}
	return tag.String(), nil
}

// FromEnv reads LC_ALL, LC_CTYPE and LANG in that order and returns the
// first one that normalises.
func FromEnv(getenv func(string) string) (string, error) {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		if l, err := Normalize(v); err == nil {
			return l, nil
		}
	}
	return "", errors.New("no locale set in environment")
}
