package git

import "errors"

var (
	ErrCommandFailed = errors.New("git command failed")
	ErrNotRepository = errors.New("not a git working tree")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidPath   = errors.New("invalid file path")
)
