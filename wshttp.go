// Package wshttp is a defensive reader for the start line and header block
// of bodiless HTTP/1.1 messages, which is the entire surface area of a
// WebSocket handshake. It enforces hard limits on line length and header
// count, so a broken or hostile peer can neither exhaust memory nor keep the
// reader busy indefinitely. Interpreting the parsed headers (key checks,
// upgrade negotiation) is left to the caller.
package wshttp

import (
	"wshttp/config"
	"wshttp/kv"
)

// ReadRequest reads a single handshake request off the source using the
// default limits. The target is returned verbatim, it is never URL-decoded.
func ReadRequest(src LineSource) (target string, headers *kv.Storage, err error) {
	return New(config.Default()).ReadRequest(src)
}

// ReadResponse reads a single handshake response off the source using the
// default limits.
func ReadResponse(src LineSource) (code int, headers *kv.Storage, err error) {
	return New(config.Default()).ReadResponse(src)
}

// ReadMessage reads a single message off the source using the default
// limits, leaving the start line raw for callers that specialize it
// themselves.
func ReadMessage(src LineSource) (startLine []byte, headers *kv.Storage, err error) {
	return New(config.Default()).ReadMessage(src)
}
