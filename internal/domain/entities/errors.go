package entities

import (
	"errors"
	"fmt"
	"strings"
)

// FetchError is returned when a remote document could not be retrieved,
// either because the transport failed or the server answered with a
// non-2xx status.
type FetchError struct {
	URL        string
	StatusCode int    // zero when the request never got a response
	Status     string // reason phrase, e.g. "500 Internal Server Error"
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Status)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError is returned when a response body is not a JSON object or when
// a numeric component cannot be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("failed to parse response: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError lists every constraint a decoded document violated.
type SchemaError struct {
	Subject  string // "manifest", "issue record", "version string"...
	Messages []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(e.Messages, "; "))
}

// DateError is returned when a string does not denote a valid instant.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

// ErrorKind names the category of a resolution failure for logging.
func ErrorKind(err error) string {
	var (
		fetchErr  *FetchError
		parseErr  *ParseError
		schemaErr *SchemaError
		dateErr   *DateError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &schemaErr):
		return "schema"
	case errors.As(err, &dateErr):
		return "date"
	default:
		return "unexpected"
	}
}
