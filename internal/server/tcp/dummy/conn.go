package dummy

import (
	"errors"
	"io"
	"net"
	"time"
)

// Conn is a scripted net.Conn: reads return the data it was initialised
// with, writes are captured for later inspection
type Conn struct {
	data    []byte
	Written []byte
	Closed  bool
}

func NewConn(data []byte) *Conn {
	return &Conn{data: data}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	c.Written = append(c.Written, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr  { return nil }
func (c *Conn) RemoteAddr() net.Addr { return nil }

func (c *Conn) SetDeadline(time.Time) error      { return nil }
func (c *Conn) SetReadDeadline(time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(time.Time) error { return nil }

// BrokenConn fails every I/O operation. Used to exercise error edges
type BrokenConn struct {
	Conn
}

var ErrBroken = errors.New("broken conn")

func NewBrokenConn() *BrokenConn {
	return new(BrokenConn)
}

func (c *BrokenConn) Read([]byte) (int, error)  { return 0, ErrBroken }
func (c *BrokenConn) Write([]byte) (int, error) { return 0, ErrBroken }
