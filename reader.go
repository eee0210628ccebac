package wshttp

import (
	"bytes"
	"io"
	"strings"

	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"

	"wshttp/config"
	"wshttp/kv"
	"wshttp/status"
)

const (
	methodGet   = "GET"
	protoHTTP11 = "HTTP/1.1"
)

var crlf = []byte("\r\n")

// Reader reads exactly one bodiless HTTP/1.1 message per call: a start line,
// up to cfg.Message.MaxHeaders header lines and the blank terminator line.
// Afterwards the source sits exactly at the first byte following the blank
// line. A Reader serves one stream at a time and must not be used
// concurrently.
type Reader struct {
	cfg     config.Config
	headers *buffer.Buffer
}

func New(cfg config.Config) *Reader {
	cfg = config.Fill(cfg)

	return &Reader{
		cfg:     cfg,
		headers: buffer.New(cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
	}
}

// ReadRequest reads a handshake request and returns its target verbatim,
// never URL-decoded, along with the parsed headers. Any method except GET is
// rejected with status.ErrUnsupportedMethod, any version except HTTP/1.1
// with status.ErrUnsupportedVersion.
func (r *Reader) ReadRequest(src LineSource) (target string, headers *kv.Storage, err error) {
	startLine, headers, err := r.ReadMessage(src)
	if err != nil {
		return "", nil, err
	}

	method, rest := cutField(uf.B2S(startLine[:len(startLine)-2]))
	target, version := cutField(rest)

	if method != methodGet {
		return "", nil, status.ErrUnsupportedMethod
	}

	if version != protoHTTP11 {
		return "", nil, status.ErrUnsupportedVersion
	}

	return target, headers, nil
}

// ReadResponse reads a handshake response and returns its status code along
// with the parsed headers. The reason phrase may contain spaces or be
// absent; either way it is left untouched and discarded.
func (r *Reader) ReadResponse(src LineSource) (code int, headers *kv.Storage, err error) {
	startLine, headers, err := r.ReadMessage(src)
	if err != nil {
		return 0, nil, err
	}

	version, rest := cutField(uf.B2S(startLine[:len(startLine)-2]))
	codeField, _ := cutField(rest)

	if version != protoHTTP11 {
		return 0, nil, status.ErrUnsupportedVersion
	}

	code, ok := parseStatusCode(codeField)
	if !ok {
		return 0, nil, status.ErrInvalidStatus
	}

	return code, headers, nil
}

// ReadMessage reads one message off the source: the raw start line with its
// terminator kept, plus the parsed header block. Header names and values
// alias the Reader's internal buffer and stay valid until the next call on
// the same Reader.
func (r *Reader) ReadMessage(src LineSource) (startLine []byte, headers *kv.Storage, err error) {
	raw, err := r.readLine(src)
	if err != nil {
		return nil, nil, err
	}

	// the line source reuses its buffer, and the start line must survive
	// the header loop below
	startLine = append(make([]byte, 0, len(raw)), raw...)

	r.headers.Clear()

	// one extra iteration for the terminator line, which doesn't count
	// against the header budget
	for i := 0; i <= r.cfg.Message.MaxHeaders; i++ {
		line, err := r.readLine(src)
		if err != nil {
			return nil, nil, err
		}

		if bytes.Equal(line, crlf) {
			headers = kv.NewPrealloc(r.cfg.Headers.Prealloc)
			if err = ParseHeaders(r.headers.Finish(), headers); err != nil {
				return nil, nil, err
			}

			return startLine, headers, nil
		}

		if !r.headers.Append(line) {
			return nil, nil, status.ErrTooLargeHeaders
		}
	}

	return nil, nil, status.ErrTooManyHeaders
}

func (r *Reader) readLine(src LineSource) ([]byte, error) {
	line, err := src.ReadLine()

	switch {
	case len(line) > r.cfg.Message.MaxLineLength:
		// checked first: the limit must hold even when no terminator
		// ever arrives
		return nil, status.ErrTooLongLine
	case !bytes.HasSuffix(line, crlf):
		if err != nil && err != io.EOF {
			return nil, err
		}

		return nil, status.ErrMissingCRLF
	}

	return line, nil
}

// cutField splits off the first space-delimited field, leaving the rest of
// the string unsplit. Applied repeatedly it yields the bounded split the
// status line grammar requires, as the reason phrase may contain spaces
// itself.
func cutField(s string) (field, rest string) {
	if sp := strings.IndexByte(s, ' '); sp != -1 {
		return s[:sp], s[sp+1:]
	}

	return s, ""
}

// parseStatusCode accepts exactly three digits forming a value in 100..999,
// the plausible range of HTTP status codes.
func parseStatusCode(s string) (code int, ok bool) {
	if len(s) != 3 {
		return 0, false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}

		code = code*10 + int(s[i]-'0')
	}

	return code, code >= 100
}
