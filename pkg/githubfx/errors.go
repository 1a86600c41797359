package githubfx

import "errors"

var ErrInvalidBaseURL = errors.New("invalid GitHub base URL")
