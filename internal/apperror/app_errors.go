package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrPortNotSet      = errors.New("http port is empty")
	ErrUnknownLogLevel = errors.New("unknown log level")
)
