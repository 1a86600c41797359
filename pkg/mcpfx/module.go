package mcpfx

import (
	"context"
	"os"

	"github.com/go-core-fx/logger"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"mcpfx",
		logger.WithNamedLogger("mcpfx"),
		fx.Provide(New),
		fx.Invoke(func(lc fx.Lifecycle, sh fx.Shutdowner, s *server.MCPServer, logger *zap.Logger) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("serving tools on stdio")
					go func() {
						defer close(done)

						if err := Serve(ctx, s, os.Stdin, os.Stdout, logger); err != nil {
							logger.Error("stdio transport failed", zap.Error(err))
						}

						logger.Info("stdio transport closed")
						if err := sh.Shutdown(); err != nil {
							logger.Warn("failed to request shutdown", zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					logger.Info("stopping mcp module")
					cancel()
					select {
					case <-done:
					case <-stopCtx.Done():
					}
					return nil
				},
			})
		}),
	)
}
