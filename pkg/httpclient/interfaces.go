package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Request describes a single HTTP round trip.
type Request struct {
	Method  string
	URL     string
	Body    []byte
	Headers map[string]string
}

// Executor abstracts HTTP calls so callers can inject mocks or different transports.
type Executor interface {
	Execute(ctx context.Context, req Request) (Response, error)
}
