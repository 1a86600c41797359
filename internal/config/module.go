package config

import (
	"github.com/apiarycd/repoforge/internal/git"
	"github.com/apiarycd/repoforge/internal/hosting"
	"github.com/apiarycd/repoforge/internal/tools"
	"github.com/apiarycd/repoforge/pkg/githubfx"
	"github.com/apiarycd/repoforge/pkg/mcpfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) githubfx.Config {
			return githubfx.Config{
				Token:   cfg.GitHub.Token,
				BaseURL: cfg.GitHub.BaseURL,
				Timeout: cfg.GitHub.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) mcpfx.Config {
			return mcpfx.Config{
				Name:         cfg.MCP.Name,
				Version:      cfg.MCP.Version,
				Instructions: cfg.MCP.Instructions,
			}
		}),
		fx.Provide(func(cfg Config) hosting.Config {
			return hosting.Config{
				Token: cfg.GitHub.Token,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Binary: cfg.Git.Binary,
			}
		}),
		fx.Provide(func(cfg Config) tools.Config {
			return tools.Config{
				Token:       cfg.GitHub.Token,
				ProjectsDir: cfg.Workspace.ProjectsDir,
				Branch:      cfg.Workspace.Branch,
				Remote:      cfg.Workspace.Remote,
				TemplateURL: cfg.GitHub.TemplateURL,
			}
		}),
	)
}
