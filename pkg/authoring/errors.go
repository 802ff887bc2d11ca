package authoring

import "errors"

var (
	// ErrAborted signals the author cancelled the dialog (e.g., Ctrl+C).
	ErrAborted = errors.New("authoring: aborted")
	// ErrButtonIndex is returned when a session edit targets a missing button.
	ErrButtonIndex = errors.New("authoring: button index out of range")
)
