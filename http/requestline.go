package http

import (
	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/http/uri"
	"github.com/indigo-web/atto/http/version"
)

// RequestLine is the first line of an HTTP request message: a method, a
// request-target and a protocol version. The parser produces a fully
// populated value or none at all; the setters exist for hand-constructed
// requests, mostly in tests
type RequestLine struct {
	method  method.Method
	uri     uri.URI
	version version.Version
}

// NewRequestLine returns the default request-line, GET / HTTP/1.1
func NewRequestLine() RequestLine {
	return RequestLine{
		method:  method.GET,
		uri:     uri.Default(),
		version: version.Default(),
	}
}

func (l RequestLine) Method() method.Method {
	return l.method
}

func (l *RequestLine) SetMethod(m method.Method) {
	l.method = m
}

func (l RequestLine) URI() uri.URI {
	return l.uri
}

func (l *RequestLine) SetURI(u uri.URI) {
	l.uri = u
}

func (l RequestLine) Version() version.Version {
	return l.version
}

func (l *RequestLine) SetVersion(v version.Version) {
	l.version = v
}

// String renders the request-line in its wire form, including the
// terminating CRLF
func (l RequestLine) String() string {
	return l.method.String() + " " + l.uri.String() + " " + l.version.String() + "\r\n"
}
