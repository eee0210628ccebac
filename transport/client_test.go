package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("read and pushback", func(t *testing.T) {
		local, remote := net.Pipe()
		client := NewClient(remote, 0, make([]byte, 64))

		go func() {
			_, _ = local.Write([]byte("handshake"))
		}()

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "handshake", string(data))

		client.Pushback(data[4:])
		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, "shake", string(data))

		require.NoError(t, client.Close())
	})

	t.Run("read deadline fires", func(t *testing.T) {
		_, remote := net.Pipe()
		client := NewClient(remote, 10*time.Millisecond, make([]byte, 64))

		_, err := client.Read()
		require.Error(t, err)

		netErr, ok := err.(net.Error)
		require.True(t, ok)
		require.True(t, netErr.Timeout())
	})

	t.Run("write passes through", func(t *testing.T) {
		local, remote := net.Pipe()
		client := NewClient(remote, 0, make([]byte, 64))

		received := make(chan []byte)
		go func() {
			buff := make([]byte, 64)
			n, _ := local.Read(buff)
			received <- buff[:n]
		}()

		n, err := client.Write([]byte("HTTP/1.1 101 Switching Protocols\r\n"))
		require.NoError(t, err)
		require.Equal(t, 34, n)
		require.Equal(t, "HTTP/1.1 101 Switching Protocols\r\n", string(<-received))
	})
}
