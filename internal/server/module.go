package server

import (
	"github.com/go-core-fx/logger"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(NewHandler, fx.Private),

		fx.Invoke(func(h *Handler, s *server.MCPServer) {
			h.Register(s)
		}),
	)
}
