package tools

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apiarycd/repoforge/internal/git"
)

// CreateFile writes content to a path relative to the project working tree.
func (d *Dispatcher) CreateFile(ctx context.Context, input CreateFileInput) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	projectPath := d.session.ProjectPath()
	if projectPath == "" {
		return unmet(msgNoProjectPath)
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	fullPath, err := d.git.WriteFile(ctx, projectPath, input.FilePath, input.Content)
	if err != nil {
		return failed(err, "Failed to create file")
	}

	return succeeded("File '%s' created successfully at %s", input.FilePath, fullPath)
}

// ReadFileContent returns the content of a file in the project working tree.
func (d *Dispatcher) ReadFileContent(ctx context.Context, input FilePathInput) Result {
	if !d.hasToken() {
		return Result{Kind: KindConfiguration, Message: msgTokenMissing}
	}

	projectPath := d.session.ProjectPath()
	if projectPath == "" {
		return unmet(msgNoProjectPath)
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	content, err := d.git.ReadFile(ctx, projectPath, input.FilePath)
	if errors.Is(err, git.ErrFileNotFound) {
		return missing(err, "File %s does not exist", input.FilePath)
	}
	if err != nil {
		return failed(err, "Failed to read file")
	}

	return succeeded("File content: %s", content)
}

// CheckFile reads a file from the conventional project directory. Unlike
// ReadFileContent it needs only a project name and no credential.
func (d *Dispatcher) CheckFile(_ context.Context, input FilePathInput) Result {
	name := d.session.ProjectName()
	if name == "" {
		return unmet(msgNoProjectNameError)
	}

	if res, ok := d.checkInput(input); !ok {
		return res
	}

	data, err := os.ReadFile(filepath.Join(d.projectDir(name), input.FilePath))
	if errors.Is(err, fs.ErrNotExist) {
		return missing(err, "Error: File %s not found in project directory.", input.FilePath)
	}
	if err != nil {
		return failed(err, "Error reading file %s", input.FilePath)
	}

	return succeeded("Content of %s:\n\n%s", input.FilePath, string(data))
}
