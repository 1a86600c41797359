package hosting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

type Service struct {
	client *github.Client
	token  string

	mu    sync.Mutex
	login string

	logger *zap.Logger
}

// NewService creates a new hosting Service.
func NewService(config Config, client *github.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		token:  config.Token,

		logger: logger,
	}
}

// Init resolves the authenticated user. Until it succeeds, Create reports
// ErrNotConfigured.
func (s *Service) Init(ctx context.Context) error {
	if s.token == "" {
		return ErrNotConfigured
	}

	login, err := s.currentLogin(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("hosting client initialized", zap.String("user", login))
	return nil
}

// Ready reports whether the authenticated user has been resolved.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.login != ""
}

// Create creates a public, auto-initialized repository owned by the
// authenticated user.
func (s *Service) Create(ctx context.Context, name string) (*Repository, error) {
	if !s.Ready() {
		return nil, ErrNotConfigured
	}

	s.logger.Info("creating repository", zap.String("name", name))

	description := "Repository for " + name
	private := false
	autoInit := true

	repo, _, err := s.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        &name,
		Description: &description,
		Private:     &private,
		AutoInit:    &autoInit,
	})
	if err != nil {
		s.logger.Error("failed to create repository", zap.String("name", name), zap.Error(err))
		return nil, classify(err)
	}

	s.logger.Info("repository created", zap.String("name", name), zap.String("url", repo.GetHTMLURL()))
	return newRepository(repo), nil
}

// Lookup returns the authenticated user's repository with the given name.
func (s *Service) Lookup(ctx context.Context, name string) (*Repository, error) {
	s.logger.Debug("looking up repository", zap.String("name", name))

	login, err := s.currentLogin(ctx)
	if err != nil {
		return nil, err
	}

	repo, _, err := s.client.Repositories.Get(ctx, login, name)
	if err != nil {
		s.logger.Warn("failed to get repository", zap.String("name", name), zap.Error(err))
		return nil, classify(err)
	}

	return newRepository(repo), nil
}

func (s *Service) currentLogin(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.login != "" {
		return s.login, nil
	}

	user, _, err := s.client.Users.Get(ctx, "")
	if err != nil {
		return "", classify(err)
	}

	s.login = user.GetLogin()
	return s.login, nil
}

func newRepository(repo *github.Repository) *Repository {
	return &Repository{
		Name:     repo.GetName(),
		CloneURL: repo.GetCloneURL(),
		SSHURL:   repo.GetSSHURL(),
		HTMLURL:  repo.GetHTMLURL(),
	}
}

func classify(err error) error {
	var respErr *github.ErrorResponse
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	switch respErr.Response.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrRepositoryNotFound, respErr.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, respErr.Message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRepositoryExists, respErr.Message)
	default:
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
}
