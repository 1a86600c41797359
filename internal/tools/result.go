package tools

import "fmt"

// Kind classifies the outcome of an operation.
type Kind string

const (
	KindOK            Kind = "ok"
	KindConfiguration Kind = "configuration"
	KindPrecondition  Kind = "precondition"
	KindCollaborator  Kind = "collaborator"
	KindNotFound      Kind = "not_found"
)

// Result is the outcome of a dispatcher operation. Message is the text shown
// to the caller; Err is the underlying failure, if any.
type Result struct {
	Kind    Kind
	Message string
	Err     error
}

func (r Result) OK() bool {
	return r.Kind == KindOK
}

// String renders the result for the transport.
func (r Result) String() string {
	return r.Message
}

func succeeded(format string, args ...any) Result {
	return Result{Kind: KindOK, Message: fmt.Sprintf(format, args...)}
}

func unmet(message string) Result {
	return Result{Kind: KindPrecondition, Message: message}
}

func missing(err error, format string, args ...any) Result {
	return Result{Kind: KindNotFound, Message: fmt.Sprintf(format, args...), Err: err}
}

// failed appends the error text to the formatted prefix.
func failed(err error, format string, args ...any) Result {
	return Result{
		Kind:    KindCollaborator,
		Message: fmt.Sprintf(format, args...) + ": " + err.Error(),
		Err:     err,
	}
}
