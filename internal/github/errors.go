package github

import (
	"errors"
)

var (
	// ErrConfig is returned when the client cannot be constructed
	ErrConfig = errors.New("configuration error")
	// ErrInvalidArgument is returned before any request when arguments are missing or conflict
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransport is returned when the HTTP exchange itself fails
	ErrTransport = errors.New("transport failure")
	// ErrGraphQL is returned when GitHub answers with an errors array
	ErrGraphQL = errors.New("graphql error")
	// ErrNotFound is returned when a queried node resolves to null
	ErrNotFound = errors.New("not found")
	// ErrCreateFailed is returned when a creation mutation yields no item
	ErrCreateFailed = errors.New("failed to create project item")
)

// ErrorKind returns a stable label for err, suitable for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrGraphQL):
		return "graphql"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrCreateFailed):
		return "create_failed"
	default:
		return "error"
	}
}
