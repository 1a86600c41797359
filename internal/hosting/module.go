package hosting

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"hosting",
		logger.WithNamedLogger("hosting"),
		fx.Provide(NewService),
		fx.Invoke(func(lc fx.Lifecycle, svc *Service, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					// the server keeps running without a usable client
					if err := svc.Init(ctx); err != nil {
						logger.Error("failed to initialize hosting client", zap.Error(err))
					}
					return nil
				},
			})
		}),
	)
}
