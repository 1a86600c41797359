package git

import "context"

// CloneRequest represents the request to clone a repository.
type CloneRequest struct {
	URL       string // Git repository URL
	Branch    string // Branch to clone (optional, defaults to the remote HEAD)
	Directory string // Directory to clone into
}

// PushRequest represents the request to push a branch.
type PushRequest struct {
	Path        string // Working tree path
	Remote      string // Remote name
	Branch      string // Branch to push
	SetUpstream bool   // Pass -u
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}
