package uri

import (
	"github.com/indigo-web/atto/http/status"
)

// URI is an opaque path-and-query token. No normalization and no decoding is
// performed: the token is kept verbatim, percent-encoding included, so routing
// lookups see exactly the bytes the client sent
type URI struct {
	raw string
}

// Default returns the root URI
func Default() URI {
	return URI{"/"}
}

// Parse constructs a URI from a token of one or more non-whitespace characters
func Parse(str string) (URI, error) {
	if len(str) == 0 {
		return URI{}, status.ErrInvalidURI
	}

	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return URI{}, status.ErrInvalidURI
		}
	}

	return URI{str}, nil
}

// String returns the identical token the URI was constructed from. The zero
// value renders as the root path
func (u URI) String() string {
	if len(u.raw) == 0 {
		return "/"
	}

	return u.raw
}
