package tcp

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	served := make(chan []byte, 1)
	s := NewServer(sock, func(conn net.Conn) {
		c := NewConn(conn, 1500, time.Minute)
		_ = c.Serve(func(data []byte) []byte {
			served <- append([]byte(nil), data...)
			return []byte("HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n")
		})
	})

	done := make(chan error, 1)
	go func() {
		done <- s.Start()
	}()

	client, err := net.Dial("tcp", sock.Addr().String())
	require.NoError(t, err)

	_, err = client.Write([]byte("GET / HTTP/1.1\r\n"))
	require.NoError(t, err)

	select {
	case data := <-served:
		require.Equal(t, "GET / HTTP/1.1\r\n", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("connection was never served")
	}

	buff := make([]byte, 1024)
	n, err := client.Read(buff)
	require.NoError(t, err)
	require.Contains(t, string(buff[:n]), "200 OK")

	// the connection lifecycle ends after a single response
	_ = client.SetReadDeadline(time.Now().Add(5 * time.Second))
	n, _ = client.Read(buff)
	require.Zero(t, n, "connection must be closed after the response")

	require.NoError(t, s.Stop())

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("accept loop did not stop")
	}
}
