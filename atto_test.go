package atto

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/atto/http"
	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/router/inbuilt"
	"github.com/stretchr/testify/require"
)

const addr = "localhost:16100"

func send(t *testing.T, raw string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	response, err := io.ReadAll(conn)
	require.NoError(t, err, "the server must always respond and then close")

	return string(response)
}

func TestApp(t *testing.T) {
	r := inbuilt.New().Install(inbuilt.NewRoutes().
		Get("/", func(_ *http.Request, resp *http.Response) {
			resp.Code(status.OK).String("Hello, world!")
		}))

	app := New(addr)
	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Serve(r)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("server never started")
	}

	t.Run("registered route", func(t *testing.T) {
		response := send(t, "GET / HTTP/1.1\r\n")
		require.Contains(t, response, "HTTP/1.1 200 OK\r\n")
		require.Contains(t, response, "Hello, world!")
	})

	t.Run("not found", func(t *testing.T) {
		response := send(t, "GET /missing HTTP/1.1\r\n")
		require.Contains(t, response, "HTTP/1.1 404 Not Found\r\n")
	})

	t.Run("malformed request", func(t *testing.T) {
		response := send(t, "definitely not an http request\r\n")
		require.Contains(t, response, "HTTP/1.1 400 Bad Request\r\n")
	})

	app.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server never stopped")
	}
}
