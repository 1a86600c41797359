package server

import (
	"context"
	"fmt"

	"github.com/apiarycd/repoforge/internal/tools"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

type operation func(ctx context.Context, request mcp.CallToolRequest) tools.Result

// Handler exposes the dispatcher operations as tools.
type Handler struct {
	dispatcher *tools.Dispatcher
	logger     *zap.Logger
}

func NewHandler(dispatcher *tools.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register adds every tool to s.
func (h *Handler) Register(s *server.MCPServer) {
	s.AddTools(h.Tools()...)
}

// Tools returns the tool definitions bound to their handlers.
func (h *Handler) Tools() []server.ServerTool {
	return []server.ServerTool{
		h.tool(
			mcp.NewTool("set_project_name",
				mcp.WithDescription("Set a project name for use in subsequent repository operations."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Project and repository name")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.SetProjectName(ctx, tools.ProjectNameInput{Name: r.GetString("name", "")})
			},
		),
		h.tool(
			mcp.NewTool("get_project_name",
				mcp.WithDescription("Alias for set_project_name. Set a project name for use in subsequent commands."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Project and repository name")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.GetProjectName(ctx, tools.ProjectNameInput{Name: r.GetString("name", "")})
			},
		),
		h.tool(
			mcp.NewTool("setup_existing_repository",
				mcp.WithDescription("Set up context for working with an existing repository owned by the authenticated user."),
				mcp.WithString("repo_name", mcp.Required(), mcp.Description("Name of the existing repository")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.SetupExistingRepository(ctx, tools.RepositoryInput{RepoName: r.GetString("repo_name", "")})
			},
		),
		h.tool(
			mcp.NewTool("create_repository",
				mcp.WithDescription("Create a new public repository named after the current project."),
			),
			func(ctx context.Context, _ mcp.CallToolRequest) tools.Result {
				return h.dispatcher.CreateRepository(ctx)
			},
		),
		h.tool(
			mcp.NewTool("clone_repository",
				mcp.WithDescription("Clone the project repository into the projects directory. Works with both new and existing repositories."),
			),
			func(ctx context.Context, _ mcp.CallToolRequest) tools.Result {
				return h.dispatcher.CloneRepository(ctx)
			},
		),
		h.tool(
			mcp.NewTool("merge_template_repository",
				mcp.WithDescription("Clone the template repository and merge its contents into the cloned project."),
			),
			func(ctx context.Context, _ mcp.CallToolRequest) tools.Result {
				return h.dispatcher.MergeTemplateRepository(ctx)
			},
		),
		h.tool(
			mcp.NewTool("create_file",
				mcp.WithDescription("Create a file with the given content in the project directory."),
				mcp.WithString("file_path", mcp.Required(), mcp.Description("Path relative to the project root")),
				mcp.WithString("content", mcp.Description("File content")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.CreateFile(ctx, tools.CreateFileInput{
					FilePath: r.GetString("file_path", ""),
					Content:  r.GetString("content", ""),
				})
			},
		),
		h.tool(
			mcp.NewTool("commit_and_push",
				mcp.WithDescription("Stage, commit and push changes to the project repository."),
				mcp.WithString("commit_message", mcp.Required(), mcp.Description("Commit message")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.CommitAndPush(ctx, tools.CommitInput{Message: r.GetString("commit_message", "")})
			},
		),
		h.tool(
			mcp.NewTool("push_code",
				mcp.WithDescription("Alias for commit_and_push. Stage, commit and push using the configured remote."),
				mcp.WithString("commit_message", mcp.Required(), mcp.Description("Commit message")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.PushCode(ctx, tools.CommitInput{Message: r.GetString("commit_message", "")})
			},
		),
		h.tool(
			mcp.NewTool("read_file_content",
				mcp.WithDescription("Display the content of a file in the project directory."),
				mcp.WithString("file_path", mcp.Required(), mcp.Description("Path relative to the project root")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.ReadFileContent(ctx, tools.FilePathInput{FilePath: r.GetString("file_path", "")})
			},
		),
		h.tool(
			mcp.NewTool("check_file",
				mcp.WithDescription("Alias for read_file_content. Display the content of a file in the project directory."),
				mcp.WithString("file_path", mcp.Required(), mcp.Description("Path relative to the project root")),
			),
			func(ctx context.Context, r mcp.CallToolRequest) tools.Result {
				return h.dispatcher.CheckFile(ctx, tools.FilePathInput{FilePath: r.GetString("file_path", "")})
			},
		),
	}
}

func (h *Handler) tool(def mcp.Tool, op operation) server.ServerTool {
	return server.ServerTool{
		Tool:    def,
		Handler: h.wrap(def.Name, op),
	}
}

// wrap renders the result to text. Failures are reported in the text, never
// as protocol errors.
func (h *Handler) wrap(name string, op operation) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		logger := h.logger.With(
			zap.String("invocation_id", uuid.NewString()),
			zap.String("tool", name),
		)

		defer func() {
			if r := recover(); r != nil {
				logger.Error("tool panicked", zap.Any("panic", r))
				result = mcp.NewToolResultText(h.dispatcher.Redact(fmt.Sprintf("Unexpected error in %s: %v", name, r)))
				err = nil
			}
		}()

		res := op(ctx, request)

		if res.OK() {
			logger.Info("tool completed", zap.String("kind", string(res.Kind)))
		} else {
			logger.Warn("tool failed",
				zap.String("kind", string(res.Kind)),
				zap.String("error", h.dispatcher.Redact(errorText(res.Err))),
			)
		}

		return mcp.NewToolResultText(h.dispatcher.Redact(res.String())), nil
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
