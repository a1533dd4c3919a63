package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores when a write violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")
)
