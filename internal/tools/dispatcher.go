package tools

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/apiarycd/repoforge/internal/fsmerge"
	"github.com/apiarycd/repoforge/internal/hosting"
	"github.com/apiarycd/repoforge/internal/redact"
	"github.com/apiarycd/repoforge/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Dispatcher implements the externally invokable operations. Every operation
// returns a Result and never panics on collaborator failures.
type Dispatcher struct {
	config Config

	session  *session.Context
	hosting  Hosting
	git      Git
	validate *validator.Validate

	// remove deletes a previous working tree before a clone.
	remove func(path string) error

	logger *zap.Logger
}

// NewDispatcher creates a new Dispatcher bound to the given session.
func NewDispatcher(
	config Config,
	sess *session.Context,
	hosting Hosting,
	git Git,
	validate *validator.Validate,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		config: config,

		session:  sess,
		hosting:  hosting,
		git:      git,
		validate: validate,

		remove: fsmerge.RemoveAll,

		logger: redact.Logger(logger, config.Token),
	}
}

// Redact hides the credential in text produced by collaborators.
func (d *Dispatcher) Redact(text string) string {
	return redact.String(text, d.config.Token)
}

func (d *Dispatcher) hasToken() bool {
	return d.config.Token != ""
}

// checkInput reports the first missing required argument.
func (d *Dispatcher) checkInput(input any) (Result, bool) {
	err := d.validate.Struct(input)
	if err == nil {
		return Result{}, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		names := lo.Map(verrs, func(fe validator.FieldError, _ int) string { return fe.Field() })
		return unmet(fmt.Sprintf("Missing required argument: %s", strings.Join(names, ", "))), false
	}

	return Result{Kind: KindPrecondition, Message: "Invalid arguments: " + err.Error(), Err: err}, false
}

func (d *Dispatcher) projectDir(name string) string {
	return filepath.Join(d.config.ProjectsDir, name)
}

// lookupFailure renders a failed repository lookup, keeping "not found" and
// "not accessible" apart when the provider distinguishes them.
func lookupFailure(err error, name string) Result {
	switch {
	case errors.Is(err, hosting.ErrRepositoryNotFound):
		return missing(err, "Repository '%s' not found: %v", name, err)
	case errors.Is(err, hosting.ErrAccessDenied):
		return failed(err, "Repository '%s' is not accessible", name)
	default:
		return failed(err, "Repository '%s' not found or not accessible", name)
	}
}

func toRemote(repo *hosting.Repository) session.Remote {
	return session.Remote{
		CloneURL: repo.CloneURL,
		SSHURL:   repo.SSHURL,
		HTMLURL:  repo.HTMLURL,
	}
}

// NewValidator returns a validator reporting fields by their json names.
func NewValidator() *validator.Validate {
	return withJSONNames(validator.New(validator.WithRequiredStructEnabled()))
}

// withJSONNames makes validation errors name fields as callers spell them.
func withJSONNames(v *validator.Validate) *validator.Validate {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}
