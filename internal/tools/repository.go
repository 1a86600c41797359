package tools

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/apiarycd/repoforge/internal/fsmerge"
	"github.com/apiarycd/repoforge/internal/git"
	"go.uber.org/zap"
)

// SetProjectName selects the project used by subsequent operations.
func (d *Dispatcher) SetProjectName(_ context.Context, input ProjectNameInput) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	d.session.SetProjectName(input.Name)
	d.logger.Info("project name set", zap.String("project", input.Name))

	return succeeded("Project name set to %s", input.Name)
}

// GetProjectName is an alias of SetProjectName.
func (d *Dispatcher) GetProjectName(ctx context.Context, input ProjectNameInput) Result {
	return d.SetProjectName(ctx, input)
}

// SetupExistingRepository binds the session to an existing remote repository.
func (d *Dispatcher) SetupExistingRepository(ctx context.Context, input RepositoryInput) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	repo, err := d.hosting.Lookup(ctx, input.RepoName)
	if err != nil {
		d.logger.Warn("failed to access repository", zap.String("repo", input.RepoName), zap.Error(err))
		res := lookupFailure(err, input.RepoName)
		res.Message = fmt.Sprintf("Failed to access repository '%s': %v", input.RepoName, err)
		return res
	}

	d.session.SetProjectName(input.RepoName)
	d.session.SetRemote(toRemote(repo))

	return succeeded("Successfully set up existing repository '%s'. Ready for clone and merge operations.", input.RepoName)
}

// CreateRepository creates the remote repository named after the project.
func (d *Dispatcher) CreateRepository(ctx context.Context) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	if !d.hosting.Ready() {
		return Result{Kind: KindConfiguration, Message: msgClientNotReady}
	}

	name := d.session.ProjectName()
	if name == "" {
		return unmet(msgNoProjectNameCreate)
	}

	repo, err := d.hosting.Create(ctx, name)
	if err != nil {
		return failed(err, "Failed to create repository")
	}

	d.session.SetRemote(toRemote(repo))

	return succeeded("Repository %s created successfully. URL: %s", name, repo.HTMLURL)
}

// CloneRepository clones the project's repository into the projects root,
// replacing any previous working tree.
func (d *Dispatcher) CloneRepository(ctx context.Context) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	name := d.session.ProjectName()
	if name == "" {
		return unmet(msgNoProjectName)
	}

	if d.session.RepoURL() == "" {
		repo, err := d.hosting.Lookup(ctx, name)
		if err != nil {
			return lookupFailure(err, name)
		}
		d.session.SetRemote(toRemote(repo))
	}

	if err := os.MkdirAll(d.config.ProjectsDir, 0o755); err != nil {
		return failed(err, "Failed to create projects directory")
	}

	projectPath := d.projectDir(name)

	// the previous tree is gone or partial from here on
	d.session.SetProjectPath("")

	cleaned := true
	if _, err := os.Lstat(projectPath); err == nil {
		if rmErr := d.remove(projectPath); rmErr != nil {
			d.logger.Warn("could not fully remove directory",
				zap.String("path", projectPath), zap.Error(rmErr))
			cleaned = false
		}
	}

	err := d.git.Clone(ctx, git.CloneRequest{
		URL:       d.session.RepoURL(),
		Branch:    d.config.Branch,
		Directory: projectPath,
	})
	if err != nil {
		res := failed(err, "Failed to clone repository")
		if !cleaned {
			res.Message = "Warning: Could not fully clean existing directory. " + res.Message
		}
		return res
	}

	d.session.SetProjectPath(projectPath)

	if !cleaned {
		return succeeded("Repository cloned to %s (warning: existing directory was not fully cleaned)", projectPath)
	}

	return succeeded("Repository cloned to %s", projectPath)
}

// MergeTemplateRepository overlays the template repository onto the project
// working tree. The scratch clone is removed on every exit path.
func (d *Dispatcher) MergeTemplateRepository(ctx context.Context) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	projectPath := d.session.ProjectPath()
	if projectPath == "" {
		return unmet(msgNoProjectPath)
	}

	scratch, err := os.MkdirTemp("", "repoforge-template-*")
	if err != nil {
		return failed(err, "Failed to create scratch directory")
	}
	defer func() {
		if rmErr := fsmerge.RemoveAll(scratch); rmErr != nil {
			d.logger.Warn("could not remove scratch directory",
				zap.String("path", scratch), zap.Error(rmErr))
		}
	}()

	templatePath := filepath.Join(scratch, templateName(d.config.TemplateURL))

	if cloneErr := d.git.Clone(ctx, git.CloneRequest{URL: d.config.TemplateURL, Directory: templatePath}); cloneErr != nil {
		return failed(cloneErr, "Failed to clone template repository")
	}

	if mergeErr := fsmerge.Merge(templatePath, projectPath); mergeErr != nil {
		return failed(mergeErr, "Failed to merge template repository contents")
	}

	d.logger.Info("template merged",
		zap.String("template", d.config.TemplateURL),
		zap.String("path", projectPath))

	return succeeded("Template repository merged into %s", d.session.ProjectName())
}

func templateName(url string) string {
	name := path.Base(strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git"))
	if name == "" || name == "." || name == "/" {
		return "template"
	}

	return name
}
