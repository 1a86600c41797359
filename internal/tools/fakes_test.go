package tools

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/apiarycd/repoforge/internal/git"
	"github.com/apiarycd/repoforge/internal/hosting"
	"github.com/apiarycd/repoforge/internal/session"
	"go.uber.org/zap/zaptest"
)

const (
	testToken       = "ghp_testtoken"
	testTemplateURL = "https://github.com/example/react-vite"
)

type fakeHosting struct {
	ready     bool
	repos     map[string]*hosting.Repository
	lookupErr error

	calls int
}

func newFakeHosting() *fakeHosting {
	return &fakeHosting{ready: true, repos: map[string]*hosting.Repository{}}
}

func (h *fakeHosting) Ready() bool {
	return h.ready
}

func (h *fakeHosting) Create(_ context.Context, name string) (*hosting.Repository, error) {
	h.calls++
	if _, ok := h.repos[name]; ok {
		return nil, fmt.Errorf("%w: name already exists on this account", hosting.ErrRepositoryExists)
	}
	repo := &hosting.Repository{
		Name:     name,
		CloneURL: "https://github.com/octo/" + name + ".git",
		SSHURL:   "git@github.com:octo/" + name + ".git",
		HTMLURL:  "https://github.com/octo/" + name,
	}
	h.repos[name] = repo
	return repo, nil
}

func (h *fakeHosting) Lookup(_ context.Context, name string) (*hosting.Repository, error) {
	h.calls++
	if h.lookupErr != nil {
		return nil, h.lookupErr
	}
	repo, ok := h.repos[name]
	if !ok {
		return nil, fmt.Errorf("%w: Not Found", hosting.ErrRepositoryNotFound)
	}
	return repo, nil
}

// fakeGit stands in for the git executable: a clone writes a small tree
// with a README for project repositories and a template tree otherwise.
type fakeGit struct {
	cloneErr  error
	commitErr error
	pushErr   error

	clones   []git.CloneRequest
	commands []string
	remotes  map[string]string
}

func newFakeGit() *fakeGit {
	return &fakeGit{remotes: map[string]string{}}
}

func (g *fakeGit) Clone(_ context.Context, req git.CloneRequest) error {
	g.clones = append(g.clones, req)

	if g.cloneErr != nil {
		return g.cloneErr
	}

	if _, err := os.Stat(req.Directory); err == nil {
		return fmt.Errorf("%w: clone: non-zero exit: destination path '%s' already exists", git.ErrCommandFailed, req.Directory)
	}

	files := map[string]string{".git/HEAD": "ref: refs/heads/main\n"}
	if req.URL == testTemplateURL {
		files["package.json"] = `{"name":"react-vite"}`
		files["src/main.tsx"] = "createRoot()"
		files["README.md"] = "# React + Vite\n"
	} else {
		files["README.md"] = "# " + filepath.Base(req.Directory) + "\n"
	}

	for name, content := range files {
		path := filepath.Join(req.Directory, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func (g *fakeGit) AddAll(_ context.Context, repoPath string) error {
	g.commands = append(g.commands, "add "+repoPath)
	return nil
}

func (g *fakeGit) Commit(_ context.Context, repoPath, message string) error {
	g.commands = append(g.commands, "commit "+repoPath+" "+message)
	return g.commitErr
}

func (g *fakeGit) SetRemoteURL(_ context.Context, repoPath, remote, url string) error {
	g.commands = append(g.commands, "set-url "+repoPath)
	g.remotes[remote] = url
	return nil
}

func (g *fakeGit) Push(_ context.Context, req git.PushRequest) error {
	g.commands = append(g.commands, fmt.Sprintf("push %s %s %s %t", req.Path, req.Remote, req.Branch, req.SetUpstream))
	return g.pushErr
}

func (g *fakeGit) PushCurrent(_ context.Context, repoPath string) error {
	g.commands = append(g.commands, "push "+repoPath)
	return g.pushErr
}

func (g *fakeGit) IsRepository(repoPath string) bool {
	info, err := os.Stat(filepath.Join(repoPath, ".git"))
	return err == nil && info.IsDir()
}

func (g *fakeGit) ReadFile(_ context.Context, repoPath, filePath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(repoPath, filePath))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", git.ErrFileNotFound, filePath)
	}
	return string(data), err
}

func (g *fakeGit) WriteFile(_ context.Context, repoPath, filePath, content string) (string, error) {
	full := filepath.Join(repoPath, filePath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	return full, os.WriteFile(full, []byte(content), 0o644)
}

func (g *fakeGit) sideEffects() int {
	return len(g.clones) + len(g.commands)
}

type fixture struct {
	dispatcher *Dispatcher
	hosting    *fakeHosting
	git        *fakeGit
	session    *session.Context
	config     Config
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()

	cfg := Config{
		Token:       token,
		ProjectsDir: filepath.Join(t.TempDir(), "projects"),
		Branch:      "main",
		Remote:      "origin",
		TemplateURL: testTemplateURL,
	}

	f := &fixture{
		hosting: newFakeHosting(),
		git:     newFakeGit(),
		session: session.New(),
		config:  cfg,
	}
	f.dispatcher = NewDispatcher(cfg, f.session, f.hosting, f.git, NewValidator(), zaptest.NewLogger(t))

	return f
}

// cloned runs set_project_name, create_repository and clone_repository.
func (f *fixture) cloned(t *testing.T, name string) {
	t.Helper()
	ctx := context.Background()

	for _, res := range []Result{
		f.dispatcher.SetProjectName(ctx, ProjectNameInput{Name: name}),
		f.dispatcher.CreateRepository(ctx),
		f.dispatcher.CloneRepository(ctx),
	} {
		if !res.OK() {
			t.Fatalf("setup step failed: %s", res)
		}
	}
}
