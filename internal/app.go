package internal

import (
	"context"

	"github.com/apiarycd/repoforge/internal/config"
	"github.com/apiarycd/repoforge/internal/git"
	"github.com/apiarycd/repoforge/internal/hosting"
	"github.com/apiarycd/repoforge/internal/process"
	"github.com/apiarycd/repoforge/internal/redact"
	"github.com/apiarycd/repoforge/internal/server"
	"github.com/apiarycd/repoforge/internal/tools"
	"github.com/apiarycd/repoforge/pkg/githubfx"
	"github.com/apiarycd/repoforge/pkg/mcpfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		config.Module(),
		// collaborator output may echo the credential
		fx.Decorate(func(cfg config.Config, logger *zap.Logger) *zap.Logger {
			return redact.Logger(logger, cfg.GitHub.Token)
		}),
		githubfx.Module(),
		validator.Module,
		//
		// BUSINESS MODULES
		process.Module(),
		git.Module(),
		hosting.Module(),
		tools.Module(),
		server.Module(),
		// stdio is served last so every tool is registered and the
		// hosting client is initialized before the first request
		mcpfx.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 repoforge starting up",
						zap.String("projects_dir", cfg.Workspace.ProjectsDir),
						zap.String("template_url", cfg.GitHub.TemplateURL),
					)
					if cfg.GitHub.Token == "" {
						logger.Error(config.TokenEnv + " is missing. Every repository operation will be refused.")
					}
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 repoforge shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
