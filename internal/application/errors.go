package application

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per terminal error kind
var (
	ErrUsage            = errors.New("wrong number of arguments")
	ErrPathNotFound     = errors.New("path does not exist")
	ErrNoVariantsFound  = errors.New("no variants found")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrLaunchFailed     = errors.New("launch failed")
)

// Exit codes reported by the CLI
const (
	ExitSuccess          = 0
	ExitUsage            = 1
	ExitPathNotFound     = 2
	ExitInvalidSelection = 3
	ExitLaunchFailed     = 4
)

// UsageError represents a bad positional argument count
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 2 or 3 arguments, got %d", e.Got)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// PathError represents a missing editor or source file, or a directory
// that could not be listed
type PathError struct {
	Role string // "editor", "file" or "directory"
	Path string
	Err  error // Cause, when the path exists but could not be read
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %s %s: %v", e.Role, e.Path, e.Err)
	}
	return fmt.Sprintf("%s path does not exist: %s", e.Role, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Is(target error) bool {
	return target == ErrPathNotFound
}

// NoVariantsError represents a wildcard that matched nothing
type NoVariantsError struct {
	Pattern string
}

func (e *NoVariantsError) Error() string {
	return fmt.Sprintf("no files match %s", e.Pattern)
}

func (e *NoVariantsError) Is(target error) bool {
	return target == ErrNoVariantsFound
}

// SelectionError represents a keystroke that does not pick a listed variant
type SelectionError struct {
	Key   string
	Count int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("key %q does not select one of %d variants", e.Key, e.Count)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// LaunchError represents an editor process that could not be started
type LaunchError struct {
	Editor string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot start %s: %v", e.Editor, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// ExitCode maps an error to the process exit status. Errors outside the
// known kinds, such as a cancelled context, exit with ExitUsage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrPathNotFound), errors.Is(err, ErrNoVariantsFound):
		return ExitPathNotFound
	case errors.Is(err, ErrInvalidSelection):
		return ExitInvalidSelection
	case errors.Is(err, ErrLaunchFailed):
		return ExitLaunchFailed
	default:
		return ExitUsage
	}
}

// Message returns the console line shown for err
func Message(err error) string {
	switch {
	case err == nil:
		return "Opening the file"
	case errors.Is(err, ErrUsage):
		return "Error: Not enough args given"
	case errors.Is(err, ErrPathNotFound), errors.Is(err, ErrNoVariantsFound):
		return "Error: Given path does not exist"
	case errors.Is(err, ErrInvalidSelection):
		return "Error: Wrong user input"
	case errors.Is(err, ErrLaunchFailed):
		return "Error: Could not start the editor"
	default:
		return "Error: " + err.Error()
	}
}
