package repository

import "errors"

var (
	// ErrNotFound is returned when a row or token does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken and ErrUsernameTaken surface unique-constraint
	// violations so callers can report them on the right field.
	ErrEmailTaken    = errors.New("email already taken")
	ErrUsernameTaken = errors.New("username already taken")
)
