// Package errors defines the error taxonomy shared across artfetch packages.
package errors

import "fmt"

// Common error types.
var (
	// ErrResourceMissing is returned when a missing resource is asked to stream itself.
	ErrResourceMissing = fmt.Errorf("resource is missing and cannot be written")
	// ErrNotRegularFile is returned when an upload source is not a regular file.
	ErrNotRegularFile = fmt.Errorf("upload source is not a regular file")
	// ErrInvalidURL is returned when a source URL cannot be parsed.
	ErrInvalidURL = fmt.Errorf("invalid URL")

	// Cache errors.
	ErrCacheDirectory = fmt.Errorf("cache directory cannot be empty")
	ErrCacheClean     = fmt.Errorf("failed to clean cache")

	// Hook errors.
	ErrHookEventEmpty = fmt.Errorf("hook event cannot be empty")
	ErrHookExecution  = fmt.Errorf("error executing hook")
	ErrHookScript     = fmt.Errorf("hook script error")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
)

// ErrRepositoryNameEmptyWithIndex reports a repository entry without a name.
func ErrRepositoryNameEmptyWithIndex(index int) error {
	return fmt.Errorf("%w: repository %d has no name", ErrConfigValidation, index)
}

// ErrRepositoryURLEmptyWithName reports a repository entry without a URL.
func ErrRepositoryURLEmptyWithName(name string) error {
	return fmt.Errorf("%w: repository %q has no url", ErrConfigValidation, name)
}

// ErrRepositoryExistsWithName reports a duplicate repository name.
func ErrRepositoryExistsWithName(name string) error {
	return fmt.Errorf("%w: repository %q already exists", ErrConfigValidation, name)
}

// TransportError reports a network-level I/O failure during a single HTTP
// attempt. Requests are never retried internally; callers own retry policy.
type TransportError struct {
	Verb string
	URL  string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not %s '%s': %v", e.Verb, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports an unsuccessful HTTP status that is not a plain 404.
type StatusError struct {
	Verb       string
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("could not %s '%s': received status code %d from server: %s",
		e.Verb, e.URL, e.StatusCode, e.Status)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
