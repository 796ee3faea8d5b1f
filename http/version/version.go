package version

import (
	"strconv"
	"strings"

	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/utils/uf"
)

const scheme = "HTTP/"

// Version is a major.minor pair of an HTTP protocol version. Unlike a closed
// enumeration, the pair holds arbitrary non-negative components, so HTTP/10.1
// is as representable as HTTP/1.1
type Version struct {
	Major, Minor uint
}

// Default returns HTTP/1.1
func Default() Version {
	return Version{1, 1}
}

// String renders the version in its canonical textual form, e.g. HTTP/1.1
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString(strconv.FormatUint(uint64(v.Major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(v.Minor), 10))

	return b.String()
}

// Parse accepts exactly the canonical textual form, as produced by String
func Parse(str string) (Version, error) {
	if !strings.HasPrefix(str, scheme) {
		return Version{}, status.ErrInvalidVersion
	}

	major, minor, found := strings.Cut(str[len(scheme):], ".")
	if !found {
		return Version{}, status.ErrInvalidVersion
	}

	return FromDigits(uf.S2B(major), uf.S2B(minor))
}

// FromDigits parses two decimal digit groups into a version pair. Overflowing
// uint is reported as an error, never silently truncated
func FromDigits(major, minor []byte) (Version, error) {
	maj, err := parseDigits(major)
	if err != nil {
		return Version{}, err
	}

	min, err := parseDigits(minor)
	if err != nil {
		return Version{}, err
	}

	return Version{maj, min}, nil
}

func parseDigits(digits []byte) (uint, error) {
	n, err := strconv.ParseUint(uf.B2S(digits), 10, strconv.IntSize)
	if err != nil {
		return 0, status.ErrInvalidVersion
	}

	return uint(n), nil
}
