package duaqos

import (
	"errors"
	"fmt"
)

// Errors returned by the name-based lookups. The getters themselves never fail.
var (
	// ErrUnknownClass is returned by ParseClass for an unrecognized name.
	ErrUnknownClass = errors.New("unknown profile class")

	// ErrUnknownCategory is returned by ParseCategory for an unrecognized name.
	ErrUnknownCategory = errors.New("unknown topic category")

	// ErrUnknownProfile is returned when a class does not define a profile
	// for the requested category, e.g. there is no persistent scan profile.
	// Unwrap a *ProfileError to find which combination was asked for.
	ErrUnknownProfile = errors.New("no such profile")
)

// ProfileError reports a class/category combination missing from the catalog.
type ProfileError struct {
	Class    Class
	Category Category
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %s/%s", ErrUnknownProfile, e.Class, e.Category)
}

func (e *ProfileError) Unwrap() error {
	return ErrUnknownProfile
}
