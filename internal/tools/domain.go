package tools

import (
	"context"

	"github.com/apiarycd/repoforge/internal/git"
	"github.com/apiarycd/repoforge/internal/hosting"
)

// Hosting is the remote repository provider.
type Hosting interface {
	Ready() bool
	Create(ctx context.Context, name string) (*hosting.Repository, error)
	Lookup(ctx context.Context, name string) (*hosting.Repository, error)
}

// Git operates on local working trees.
type Git interface {
	Clone(ctx context.Context, req git.CloneRequest) error
	AddAll(ctx context.Context, repoPath string) error
	Commit(ctx context.Context, repoPath, message string) error
	SetRemoteURL(ctx context.Context, repoPath, remote, url string) error
	Push(ctx context.Context, req git.PushRequest) error
	PushCurrent(ctx context.Context, repoPath string) error

	IsRepository(repoPath string) bool

	ReadFile(ctx context.Context, repoPath, filePath string) (string, error)
	WriteFile(ctx context.Context, repoPath, filePath, content string) (string, error)
}

type ProjectNameInput struct {
	Name string `json:"name" validate:"required"`
}

type RepositoryInput struct {
	RepoName string `json:"repo_name" validate:"required"`
}

type CreateFileInput struct {
	FilePath string `json:"file_path" validate:"required"`
	Content  string `json:"content"`
}

type FilePathInput struct {
	FilePath string `json:"file_path" validate:"required"`
}

type CommitInput struct {
	Message string `json:"commit_message" validate:"required"`
}
