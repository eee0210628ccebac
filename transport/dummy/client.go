package dummy

import (
	"io"
	"net"

	"wshttp/transport"
)

var _ transport.Client = new(CircularClient)

// CircularClient replays the pieces of data it was initialised with, one
// piece per Read, over and over. Marked OneTime it instead reports EOF once
// the pieces run out, which models a peer that wrote its message and closed
// the connection.
type CircularClient struct {
	data            [][]byte
	tmp             []byte
	pointer         int
	closed, oneTime bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		data: data,
	}
}

func (c *CircularClient) Read() (data []byte, err error) {
	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if c.oneTime {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *CircularClient) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (*CircularClient) Write(p []byte) (int, error) {
	return len(p), nil
}

func (c *CircularClient) Conn() net.Conn {
	return nil
}

func (*CircularClient) Remote() net.Addr {
	return nil
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}
