package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-core-fx/config"
	"github.com/joho/godotenv"
)

// TokenEnv names the environment variable holding the hosting credential.
const TokenEnv = "GITHUB_TOKEN"

type githubConfig struct {
	Token       string        `koanf:"token"`
	BaseURL     string        `koanf:"base_url"`
	TemplateURL string        `koanf:"template_url"`
	Timeout     time.Duration `koanf:"timeout"`
}

type workspaceConfig struct {
	ProjectsDir string `koanf:"projects_dir"`
	Branch      string `koanf:"branch"`
	Remote      string `koanf:"remote"`
}

type gitConfig struct {
	Binary string `koanf:"binary"`
}

type mcpConfig struct {
	Name         string `koanf:"name"`
	Version      string `koanf:"version"`
	Instructions string `koanf:"instructions"`
}

type Config struct {
	GitHub    githubConfig    `koanf:"github"`
	Workspace workspaceConfig `koanf:"workspace"`
	Git       gitConfig       `koanf:"git"`
	MCP       mcpConfig       `koanf:"mcp"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		GitHub: githubConfig{
			TemplateURL: "https://github.com/Jeetanshu18/react-vite",
			Timeout:     30 * time.Second,
		},

		Workspace: workspaceConfig{
			ProjectsDir: "./projects",
			Branch:      "main",
			Remote:      "origin",
		},

		Git: gitConfig{
			Binary: "git",
		},

		MCP: mcpConfig{
			Name:    "github-mcp",
			Version: "0.1.0",
			Instructions: "Provision GitHub repositories: set a project name, create or set up a repository, " +
				"clone it, merge the template, edit files and push.",
		},
	}
}

func New() (Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if token := os.Getenv(TokenEnv); token != "" {
		cfg.GitHub.Token = token
	}

	return cfg, nil
}
