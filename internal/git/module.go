package git

import (
	"github.com/apiarycd/repoforge/internal/process"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"git",
		logger.WithNamedLogger("git"),
		fx.Provide(func(r *process.Runner) Runner { return r }, fx.Private),
		fx.Provide(NewService),
	)
}
