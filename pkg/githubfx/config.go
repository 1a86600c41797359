package githubfx

import (
	"time"
)

// Config holds the configuration for the GitHub API client.
//
// Example:
//
//	cfg := githubfx.Config{
//	    Token:   os.Getenv("GITHUB_TOKEN"),
//	    Timeout: 30 * time.Second,
//	}
//
//	client, err := githubfx.NewClient(cfg)
type Config struct {
	// Token is the personal access token used for every request.
	// An empty token yields an unauthenticated client.
	Token string

	// BaseURL points the client at a GitHub Enterprise API, e.g.
	// "https://github.example.com/api/v3/". Empty means api.github.com.
	BaseURL string

	// Timeout specifies the timeout for API requests.
	// Defaults to 30 seconds if zero.
	Timeout time.Duration
}

// DefaultConfig returns a default configuration for the GitHub client.
func DefaultConfig() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		Timeout: 30 * time.Second,
	}
}
