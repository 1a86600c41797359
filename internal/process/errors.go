package process

import "errors"

var (
	ErrLaunchFailed = errors.New("failed to start command")
	ErrNonZeroExit  = errors.New("non-zero exit")
)
