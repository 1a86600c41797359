package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

const defaultBinary = "git"

type Service struct {
	binary string
	runner Runner

	logger *zap.Logger
}

// NewService creates a new git Service.
func NewService(config Config, runner Runner, logger *zap.Logger) *Service {
	binary := config.Binary
	if binary == "" {
		binary = defaultBinary
	}

	return &Service{
		binary: binary,
		runner: runner,

		logger: logger,
	}
}

// Clone clones a repository into the specified directory.
func (s *Service) Clone(ctx context.Context, req CloneRequest) error {
	s.logger.Info("cloning repository",
		zap.String("directory", req.Directory),
		zap.String("branch", req.Branch))

	args := []string{"clone"}
	if req.Branch != "" {
		args = append(args, "-b", req.Branch)
	}
	args = append(args, req.URL, req.Directory)

	if err := s.run(ctx, "", args...); err != nil {
		s.logger.Error("failed to clone repository", zap.Error(err))
		return err
	}

	s.logger.Info("repository cloned successfully",
		zap.String("directory", req.Directory))

	return nil
}

// AddAll stages every change in the working tree.
func (s *Service) AddAll(ctx context.Context, repoPath string) error {
	return s.run(ctx, repoPath, "add", ".")
}

// Commit records staged changes with the given message.
func (s *Service) Commit(ctx context.Context, repoPath, message string) error {
	return s.run(ctx, repoPath, "commit", "-m", message)
}

// SetRemoteURL rewrites the URL of an existing remote.
func (s *Service) SetRemoteURL(ctx context.Context, repoPath, remote, url string) error {
	return s.run(ctx, repoPath, "remote", "set-url", remote, url)
}

// Push pushes a branch to a remote.
func (s *Service) Push(ctx context.Context, req PushRequest) error {
	s.logger.Info("pushing branch",
		zap.String("path", req.Path),
		zap.String("remote", req.Remote),
		zap.String("branch", req.Branch))

	args := []string{"push"}
	if req.SetUpstream {
		args = append(args, "-u")
	}
	args = append(args, req.Remote, req.Branch)

	if err := s.run(ctx, req.Path, args...); err != nil {
		s.logger.Error("failed to push branch", zap.Error(err))
		return err
	}

	return nil
}

// PushCurrent runs a plain push of the current branch to its configured upstream.
func (s *Service) PushCurrent(ctx context.Context, repoPath string) error {
	return s.run(ctx, repoPath, "push")
}

// IsRepository reports whether repoPath is the root of a git working tree.
func (s *Service) IsRepository(repoPath string) bool {
	_, err := git.PlainOpen(repoPath)
	return err == nil
}

// ReadFile returns the content of a file inside the working tree.
func (s *Service) ReadFile(_ context.Context, repoPath, filePath string) (string, error) {
	s.logger.Debug("reading file",
		zap.String("path", repoPath),
		zap.String("file", filePath))

	if err := localPath(filePath); err != nil {
		return "", err
	}

	worktree, err := s.worktree(repoPath)
	if err != nil {
		return "", err
	}

	file, err := worktree.Filesystem.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		s.logger.Error("failed to open file", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("failed to read file", zap.Error(err))
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(content), nil
}

// WriteFile writes content to a file inside the working tree, creating parent
// directories as needed and replacing any existing file. It returns the full
// path of the written file.
func (s *Service) WriteFile(_ context.Context, repoPath, filePath, content string) (string, error) {
	s.logger.Info("writing file",
		zap.String("path", repoPath),
		zap.String("file", filePath),
		zap.Int("size", len(content)))

	if err := localPath(filePath); err != nil {
		return "", err
	}

	worktree, err := s.worktree(repoPath)
	if err != nil {
		return "", err
	}

	fsys := worktree.Filesystem
	if dir := filepath.Dir(filePath); dir != "." {
		if mkErr := fsys.MkdirAll(dir, 0o755); mkErr != nil {
			s.logger.Error("failed to create parent directories", zap.Error(mkErr))
			return "", fmt.Errorf("%w: %w", ErrInvalidPath, mkErr)
		}
	}

	file, err := fsys.Create(filePath)
	if err != nil {
		s.logger.Error("failed to create file", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	if _, wrErr := file.Write([]byte(content)); wrErr != nil {
		file.Close()
		return "", fmt.Errorf("failed to write file: %w", wrErr)
	}

	if closeErr := file.Close(); closeErr != nil {
		return "", fmt.Errorf("failed to write file: %w", closeErr)
	}

	return filepath.Join(repoPath, filePath), nil
}

// localPath rejects absolute paths and paths leaving the working tree. The
// worktree filesystem would otherwise resolve them inside the tree.
func localPath(filePath string) error {
	if !filepath.IsLocal(filePath) {
		return fmt.Errorf("%w: %s is outside the working tree", ErrInvalidPath, filePath)
	}

	return nil
}

func (s *Service) worktree(repoPath string) (*git.Worktree, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		s.logger.Error("failed to open repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotRepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		s.logger.Error("failed to get worktree", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotRepository, err)
	}

	return worktree, nil
}

func (s *Service) run(ctx context.Context, dir string, args ...string) error {
	if _, err := s.runner.Run(ctx, dir, s.binary, args...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, args[0], err)
	}

	return nil
}
