package wshttp

import (
	"bytes"

	"wshttp/config"
	"wshttp/transport"
)

// LineSource is the stream primitive the readers consume: ReadLine returns
// the next line up to and including its terminator. At end of input it
// returns whatever incomplete tail is left, possibly nothing, along with the
// transport's error. The returned slice is only valid until the next call.
type LineSource interface {
	ReadLine() ([]byte, error)
}

type lineSource struct {
	client  transport.Client
	line    []byte
	maxLine int
}

// NewLineSource assembles lines from the chunks the client returns,
// pushing every unconsumed tail back so the stream position always sits
// right behind the last returned line. A line stops growing once it passes
// cfg.Message.MaxLineLength, which keeps memory bounded against a peer that
// never sends a terminator; such an overgrown line is returned as-is for
// the reader to reject.
func NewLineSource(client transport.Client, cfg config.Config) LineSource {
	cfg = config.Fill(cfg)

	return &lineSource{
		client:  client,
		line:    make([]byte, 0, cfg.NET.ReadBufferSize),
		maxLine: cfg.Message.MaxLineLength,
	}
}

func (s *lineSource) ReadLine() ([]byte, error) {
	s.line = s.line[:0]

	for {
		data, err := s.client.Read()

		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			s.client.Pushback(data[lf+1:])
			return append(s.line, data[:lf+1]...), nil
		}

		s.line = append(s.line, data...)

		if err != nil {
			return s.line, err
		}

		if len(s.line) > s.maxLine {
			// past the limit there is no terminator that could save the line
			return s.line, nil
		}
	}
}
