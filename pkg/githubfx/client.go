package githubfx

import (
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
)

// NewClient creates a new GitHub client with the given configuration.
func NewClient(cfg Config) (*github.Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	cli := github.NewClient(httpClient)

	if cfg.Token != "" {
		cli = cli.WithAuthToken(cfg.Token)
	}

	if cfg.BaseURL != "" {
		enterprise, err := cli.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		cli = enterprise
	}

	return cli, nil
}
