package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoScreen is returned by Run when no screen is supplied.
	ErrNoScreen = errors.New("tui: screen is required")
)
