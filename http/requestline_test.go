package http

import (
	"testing"

	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/http/uri"
	"github.com/indigo-web/atto/http/version"
	"github.com/stretchr/testify/require"
)

func TestRequestLineDefaults(t *testing.T) {
	line := NewRequestLine()
	require.Equal(t, "GET / HTTP/1.1\r\n", line.String())
	require.Equal(t, method.GET, line.Method())
	require.Equal(t, "/", line.URI().String())
	require.Equal(t, version.Default(), line.Version())
}

func TestRequestLineSetters(t *testing.T) {
	line := NewRequestLine()
	line.SetMethod(method.POST)

	u, err := uri.Parse("/form")
	require.NoError(t, err)
	line.SetURI(u)
	line.SetVersion(version.Version{1, 0})

	require.Equal(t, "POST /form HTTP/1.0\r\n", line.String())
}
