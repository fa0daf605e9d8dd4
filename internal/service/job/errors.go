package job

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrJobNotFound           = errors.New("job not found")
)
