package http1

import (
	"bytes"
	"fmt"

	"github.com/indigo-web/atto/http"
	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/http/uri"
	"github.com/indigo-web/atto/http/version"
	"github.com/indigo-web/utils/uf"
)

// minRequestLen is the length of the shortest syntactically valid
// request-line, terminator included
const minRequestLen = len("GET / HTTP/1.1\n")

var crlf = []byte("\r\n")

// Parse consumes a buffered request and returns a fully populated
// request-line along with the bytes strictly after the consumed line
// terminator, so a caller is free to continue with the headers section.
// A failure is atomic: no partially populated request-line escapes
func Parse(data []byte) (line http.RequestLine, rest []byte, err error) {
	if len(data) < minRequestLen {
		return line, nil, status.ErrTooShort
	}

	raw, rest, err := cutLine(data)
	if err != nil {
		return line, nil, err
	}

	g, ok := match(raw)
	if !ok {
		return line, nil, fmt.Errorf("%w: %q", status.ErrMalformedRequestLine, raw)
	}

	m := method.Parse(uf.B2S(g.method))
	if m == method.Unknown {
		// unreachable as long as the grammar and the enumeration agree on
		// the method set, but they are maintained independently
		return line, nil, fmt.Errorf("%w: %q", status.ErrUnknownMethod, g.method)
	}

	u, err := uri.Parse(string(g.uri))
	if err != nil {
		return line, nil, err
	}

	v, err := version.FromDigits(g.major, g.minor)
	if err != nil {
		return line, nil, err
	}

	line = http.NewRequestLine()
	line.SetMethod(m)
	line.SetURI(u)
	line.SetVersion(v)

	return line, rest, nil
}

// cutLine slices the first line off the buffer, preferring the canonical
// CRLF terminator and tolerating a bare LF
func cutLine(data []byte) (line, rest []byte, err error) {
	if idx := bytes.Index(data, crlf); idx != -1 {
		return data[:idx], data[idx+2:], nil
	}

	if idx := bytes.IndexByte(data, '\n'); idx != -1 {
		return data[:idx], data[idx+1:], nil
	}

	return nil, nil, status.ErrNoLineEnding
}
