package http

import (
	"testing"

	"github.com/indigo-web/atto/http"
	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/router/inbuilt"
	"github.com/stretchr/testify/require"
)

func newServer() *Server {
	r := inbuilt.New().Install(inbuilt.NewRoutes().
		Get("/", func(_ *http.Request, resp *http.Response) {
			resp.Code(status.OK).String("hello")
		}).
		Get("/panic", func(*http.Request, *http.Response) {
			panic("oops")
		}).
		Post("/echo-rest", func(req *http.Request, resp *http.Response) {
			resp.Bytes(req.Rest())
		}))

	return NewServer(r)
}

func TestDispatch(t *testing.T) {
	s := newServer()

	t.Run("registered route", func(t *testing.T) {
		out := string(s.Dispatch([]byte("GET / HTTP/1.1\r\n")))
		require.Contains(t, out, "HTTP/1.1 200 OK\r\n")
		require.Contains(t, out, "hello")
	})

	t.Run("not found", func(t *testing.T) {
		out := string(s.Dispatch([]byte("GET /missing HTTP/1.1\r\n")))
		require.Contains(t, out, "HTTP/1.1 404 Not Found\r\n")
	})

	t.Run("malformed request line", func(t *testing.T) {
		out := string(s.Dispatch([]byte("FETCH / HTTP/1.1\r\n")))
		require.Contains(t, out, "HTTP/1.1 400 Bad Request\r\n")
	})

	t.Run("parse errors still produce output", func(t *testing.T) {
		for _, raw := range []string{"", "GET / HTTP/1.1", "total garbage that is long enough\r\n"} {
			out := s.Dispatch([]byte(raw))
			require.NotEmpty(t, out, raw)
			require.Contains(t, string(out), "HTTP/1.1 400 Bad Request\r\n")
		}
	})

	t.Run("handler panic becomes 500", func(t *testing.T) {
		out := string(s.Dispatch([]byte("GET /panic HTTP/1.1\r\n")))
		require.Contains(t, out, "HTTP/1.1 500 Internal Server Error\r\n")
	})

	t.Run("remainder reaches the handler", func(t *testing.T) {
		out := string(s.Dispatch([]byte("POST /echo-rest HTTP/1.1\nBODY")))
		require.Contains(t, out, "Content-Length: 4\r\n")
		require.Contains(t, out, "BODY")
	})
}
