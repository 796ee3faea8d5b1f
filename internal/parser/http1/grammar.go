package http1

import (
	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/utils/uf"
)

// the grammar of a request-line, with the line terminator already stripped:
//
//	<ws>* METHOD SP URI-TOKEN SP "HTTP/" DIGIT+ "." DIGIT+
//
// METHOD is one of the eight fixed tokens, URI-TOKEN is one or more
// non-whitespace characters, exactly one SP separates the tokens and the
// whole line must be consumed. A hand-written matcher is used instead of
// regexp, as the production rule is regular and fixed

const versionScheme = "HTTP/"

// groups are the four captured token spans of a matched request-line
type groups struct {
	method []byte
	uri    []byte
	major  []byte
	minor  []byte
}

func match(line []byte) (g groups, ok bool) {
	pos := 0
	for pos < len(line) && isWhitespace(line[pos]) {
		pos++
	}

	g.method, pos, ok = token(line, pos)
	if !ok || method.Parse(uf.B2S(g.method)) == method.Unknown {
		return g, false
	}

	g.uri, pos, ok = token(line, pos)
	if !ok {
		return g, false
	}

	rest := line[pos:]
	if len(rest) < len(versionScheme) || uf.B2S(rest[:len(versionScheme)]) != versionScheme {
		return g, false
	}

	g.major, g.minor, ok = versionDigits(rest[len(versionScheme):])

	return g, ok
}

// token consumes one or more non-whitespace characters followed by a single
// SP, returning the position strictly after the separator
func token(line []byte, pos int) (tok []byte, next int, ok bool) {
	start := pos
	for pos < len(line) && !isWhitespace(line[pos]) {
		pos++
	}

	if pos == start || pos == len(line) || line[pos] != ' ' {
		return nil, 0, false
	}

	return line[start:pos], pos + 1, true
}

func versionDigits(rest []byte) (major, minor []byte, ok bool) {
	dot := -1
	for i := 0; i < len(rest); i++ {
		switch {
		case rest[i] >= '0' && rest[i] <= '9':
		case rest[i] == '.' && dot == -1:
			dot = i
		default:
			return nil, nil, false
		}
	}

	if dot < 1 || dot == len(rest)-1 {
		return nil, nil, false
	}

	return rest[:dot], rest[dot+1:], true
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
