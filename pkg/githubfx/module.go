package githubfx

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"githubfx",
		logger.WithNamedLogger("githubfx"),
		fx.Provide(NewClient),
	)
}
