package form

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("form: aborted")
	// ErrNoActions is returned by Run when no Actions were configured.
	ErrNoActions = errors.New("form: save/export actions are required")
)
