package tcp

import (
	"net"
	"time"
)

// Dispatch turns one fully-buffered inbound message into the bytes to be
// written back
type Dispatch func(raw []byte) []byte

// State is the stage a connection currently is at. A connection walks
// Accepted -> Reading -> Dispatching -> Writing -> Closed; every error edge
// leads straight to Closed
type State uint8

const (
	Accepted State = iota + 1
	Reading
	Dispatching
	Writing
	Closed
)

// Conn serves a single connection: exactly one bounded read, one dispatch
// and one write, then the connection is closed. Requests larger than the
// read buffer are truncated, not reassembled across reads; the buffer size
// is a deliberate, configurable bound
type Conn struct {
	conn        net.Conn
	buff        []byte
	readTimeout time.Duration
	state       State
}

func NewConn(conn net.Conn, readBuffSize int, readTimeout time.Duration) *Conn {
	return &Conn{
		conn:        conn,
		buff:        make([]byte, readBuffSize),
		readTimeout: readTimeout,
		state:       Accepted,
	}
}

// State reports the connection's current stage
func (c *Conn) State() State {
	return c.state
}

// Serve runs the connection through its lifecycle. The response produced by
// dispatch is written back even if the read was truncated; only an I/O
// failure leaves the peer without a response
func (c *Conn) Serve(dispatch Dispatch) error {
	c.state = Reading

	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return c.close(err)
		}
	}

	n, err := c.conn.Read(c.buff)
	if err != nil {
		return c.close(err)
	}

	c.state = Dispatching
	response := dispatch(c.buff[:n])

	c.state = Writing
	if _, err = c.conn.Write(response); err != nil {
		return c.close(err)
	}

	return c.close(nil)
}

func (c *Conn) close(err error) error {
	c.state = Closed

	if closeErr := c.conn.Close(); err == nil {
		err = closeErr
	}

	return err
}
