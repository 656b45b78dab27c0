package errors

import (
	stderrors "errors"
	"fmt"
)

// Error types for the hub and remote operations
type ErrorType string

const (
	ErrorTypeInvalidName       ErrorType = "invalid_name"
	ErrorTypeAlreadyExists     ErrorType = "already_exists"
	ErrorTypeNotFound          ErrorType = "not_found"
	ErrorTypeNotARepository    ErrorType = "not_a_repository"
	ErrorTypeInvalidRepository ErrorType = "invalid_repository"
	ErrorTypeRedundantPushURL  ErrorType = "redundant_push_url"
	ErrorTypeIO                ErrorType = "io"
	ErrorTypeConfig            ErrorType = "config"
)

// HubError represents a structured error with context
type HubError struct {
	Type    ErrorType
	Message string
	Hint    string
	Err     error
}

func (e *HubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *HubError) Unwrap() error {
	return e.Err
}

// UserFriendlyMessage returns a user-friendly error message with hint
func (e *HubError) UserFriendlyMessage() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += "\n\nSuggestion: " + e.Hint
	}
	return msg
}

// New creates a new HubError
func New(errType ErrorType, message string) *HubError {
	return &HubError{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps an existing error with context
func Wrap(errType ErrorType, message string, err error) *HubError {
	return &HubError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// WithHint adds a hint to an error
func WithHint(err *HubError, hint string) *HubError {
	err.Hint = hint
	return err
}

// TypeOf returns the type of the first HubError in the chain, or "" if none.
func TypeOf(err error) ErrorType {
	var hubErr *HubError
	if stderrors.As(err, &hubErr) {
		return hubErr.Type
	}
	return ""
}

// Is reports whether err carries a HubError of the given type.
func Is(err error, errType ErrorType) bool {
	return err != nil && TypeOf(err) == errType
}

// Common error constructors

func InvalidName(name, reason string) *HubError {
	return WithHint(
		New(ErrorTypeInvalidName, fmt.Sprintf("Invalid repository name '%s': %s", name, reason)),
		"Names must be 1-255 characters, must not be '.' or '..', and must not contain / \\ : * ? \" < > |",
	)
}

func RepositoryExists(name string) *HubError {
	return WithHint(
		New(ErrorTypeAlreadyExists, fmt.Sprintf("Repository '%s' already exists", name)),
		fmt.Sprintf("Run 'localhub info %s' to inspect it or choose a different name.", name),
	)
}

func RepositoryNotFound(name string) *HubError {
	return WithHint(
		New(ErrorTypeNotFound, fmt.Sprintf("Repository '%s' does not exist", name)),
		fmt.Sprintf("Run 'localhub list' to see hub repositories or 'localhub create %s' to create it.", name),
	)
}

func InvalidRepository(path string) *HubError {
	return WithHint(
		New(ErrorTypeInvalidRepository, fmt.Sprintf("Path '%s' is not a valid Git repository", path)),
		"The directory is missing HEAD, objects or refs. Inspect it manually; localhub will not remove it.",
	)
}

func RemoteExists(name string) *HubError {
	return WithHint(
		New(ErrorTypeAlreadyExists, fmt.Sprintf("Remote '%s' already exists", name)),
		fmt.Sprintf("Use --remote-name to pick another name or 'localhub remove-remote %s' first.", name),
	)
}

func RemoteNotFound(name string) *HubError {
	return WithHint(
		New(ErrorTypeNotFound, fmt.Sprintf("Remote '%s' does not exist", name)),
		"Run 'localhub list-remotes' to see configured remotes.",
	)
}

func NotARepository(path string, err error) *HubError {
	where := path
	if where == "" {
		where = "current directory"
	}
	return WithHint(
		Wrap(ErrorTypeNotARepository, fmt.Sprintf("No Git repository found at %s", where), err),
		"Run the command inside a working repository or pass --path.",
	)
}

func RedundantPushURL(url, remoteName string) *HubError {
	return New(ErrorTypeRedundantPushURL, fmt.Sprintf("Push URL '%s' already exists for remote '%s'", url, remoteName))
}

func IOFailure(action string, err error) *HubError {
	return Wrap(ErrorTypeIO, fmt.Sprintf("Failed to %s", action), err)
}

func InvalidConfiguration(key, reason string) *HubError {
	return WithHint(
		New(ErrorTypeConfig, fmt.Sprintf("Invalid configuration for '%s': %s", key, reason)),
		"Run 'localhub config' to see the effective configuration.",
	)
}
