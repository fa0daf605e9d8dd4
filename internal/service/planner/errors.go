package planner

import "errors"

var (
	ErrInvalidMoverID     = errors.New("invalid mover id")
	ErrInvalidCoordinates = errors.New("invalid current coordinates")
	ErrInvalidMaxDuration = errors.New("invalid max duration")
)
