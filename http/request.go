package http

import (
	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/http/uri"
	"github.com/indigo-web/atto/http/version"
)

// Request represents a single HTTP request. It is created once per connection
// and discarded after the handler returns
type Request struct {
	line RequestLine
	// rest holds whatever followed the request-line: headers and body,
	// retained opaquely as they aren't parsed at this layer
	rest []byte
}

func NewRequest(line RequestLine, rest []byte) *Request {
	return &Request{
		line: line,
		rest: rest,
	}
}

func (r *Request) Line() RequestLine {
	return r.line
}

func (r *Request) Method() method.Method {
	return r.line.Method()
}

func (r *Request) URI() uri.URI {
	return r.line.URI()
}

func (r *Request) Version() version.Version {
	return r.line.Version()
}

// Rest returns the unparsed remainder of the message, the bytes strictly
// after the request-line terminator
func (r *Request) Rest() []byte {
	return r.rest
}
