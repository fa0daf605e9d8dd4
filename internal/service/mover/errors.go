package mover

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMoverID        = errors.New("invalid mover id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidAvailability   = errors.New("invalid availability schedule")

	ErrMoverNotFound = errors.New("mover not found")
	ErrConflict      = errors.New("mover already exists")
)
