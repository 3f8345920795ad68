package workbench

import "errors"

var (
	// ErrUnknownPart is returned when a part was never registered.
	ErrUnknownPart = errors.New("unknown part")
	// ErrGridNotCreated is returned by operations that need the grid.
	ErrGridNotCreated = errors.New("grid not created")
	// ErrInvalidWindow is returned when registering the main or a nil window.
	ErrInvalidWindow = errors.New("invalid auxiliary window")
)
