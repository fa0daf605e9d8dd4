package jobevent

import "errors"

var (
	ErrUndefinedStatus = errors.New("undefined job status")
)
