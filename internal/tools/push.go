package tools

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/apiarycd/repoforge/internal/git"
	"go.uber.org/zap"
)

// CommitAndPush stages everything, commits, points the remote at an
// authenticated URL and pushes the configured branch with upstream tracking.
// A failure leaves earlier steps applied.
func (d *Dispatcher) CommitAndPush(ctx context.Context, input CommitInput) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	projectPath := d.session.ProjectPath()
	if projectPath == "" {
		return unmet(msgNoProjectPath)
	}

	if !d.git.IsRepository(projectPath) {
		return unmet("Project path " + projectPath + " is not a git working tree. Clone repository first with clone_repository.")
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	repoURL := d.session.RepoURL()
	if repoURL == "" {
		name := d.session.ProjectName()
		if name == "" {
			return unmet(msgNoRemote)
		}

		repo, err := d.hosting.Lookup(ctx, name)
		if err != nil {
			res := lookupFailure(err, name)
			res.Message = "Could not access repository '" + name + "': " + err.Error()
			return res
		}

		d.session.SetRemote(toRemote(repo))
		repoURL = repo.CloneURL
	}

	authURL := strings.Replace(repoURL, "https://", "https://"+d.config.Token+"@", 1)

	steps := []func() error{
		func() error { return d.git.AddAll(ctx, projectPath) },
		func() error { return d.git.Commit(ctx, projectPath, input.Message) },
		func() error { return d.git.SetRemoteURL(ctx, projectPath, d.config.Remote, authURL) },
		func() error {
			return d.git.Push(ctx, git.PushRequest{
				Path:        projectPath,
				Remote:      d.config.Remote,
				Branch:      d.config.Branch,
				SetUpstream: true,
			})
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			d.logger.Warn("commit and push failed", zap.String("path", projectPath), zap.Error(err))
			return failed(err, "Failed to push code")
		}
	}

	return succeeded("Changes pushed to %s successfully", d.session.ProjectName())
}

// PushCode commits and pushes from the conventional project directory using
// the remote configuration already present in the working tree. It checks
// neither the credential nor the session path.
func (d *Dispatcher) PushCode(ctx context.Context, input CommitInput) Result {
	name := d.session.ProjectName()
	if name == "" {
		return unmet(msgNoProjectNameError)
	}

	projectDir := d.projectDir(name)
	if _, err := os.Stat(projectDir); errors.Is(err, fs.ErrNotExist) {
		return unmet("Error: Project directory " + projectDir + " does not exist. Clone the repository first.")
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	steps := []func() error{
		func() error { return d.git.AddAll(ctx, projectDir) },
		func() error { return d.git.Commit(ctx, projectDir, input.Message) },
		func() error { return d.git.PushCurrent(ctx, projectDir) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			d.logger.Warn("push failed", zap.String("path", projectDir), zap.Error(err))
			return failed(err, "Git operation failed")
		}
	}

	return succeeded("Successfully committed and pushed changes with message: '%s'", input.Message)
}
