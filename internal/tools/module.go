package tools

import (
	"github.com/apiarycd/repoforge/internal/git"
	"github.com/apiarycd/repoforge/internal/hosting"
	"github.com/apiarycd/repoforge/internal/session"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"tools",
		logger.WithNamedLogger("tools"),
		fx.Decorate(withJSONNames),
		fx.Provide(session.New, fx.Private),
		fx.Provide(func(svc *hosting.Service) Hosting { return svc }, fx.Private),
		fx.Provide(func(svc *git.Service) Git { return svc }, fx.Private),
		fx.Provide(NewDispatcher),
	)
}
