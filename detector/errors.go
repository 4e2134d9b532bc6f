package detector

import (
	"errors"
	"fmt"
)

// ErrUnregisteredLocale is matched by every *UnregisteredLocaleError.
var ErrUnregisteredLocale = errors.New("detector: locale is not registered")

// UnregisteredLocaleError is returned by Detect when the locale has no
// candidate list or no diacritic matcher.
type UnregisteredLocaleError struct {
	Locale string
}

func (e *UnregisteredLocaleError) Error() string {
	return fmt.Sprintf("detector: locale %q is not registered", e.Locale)
}

func (e *UnregisteredLocaleError) Is(target error) bool {
	return target == ErrUnregisteredLocale
}
