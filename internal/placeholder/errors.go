package placeholder

import (
	"errors"
	"fmt"
)

// ErrNoPosts is returned when a user has no posts to pick from.
var ErrNoPosts = errors.New("no posts found")

// RequestError wraps a transport-level failure (DNS, refused connection, timeout).
type RequestError struct {
	Op  string
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError reports a response body with an unexpected JSON shape.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failure writing an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
