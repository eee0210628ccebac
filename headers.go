package wshttp

import (
	"bytes"

	"github.com/indigo-web/utils/uf"

	"wshttp/internal/strutil"
	"wshttp/kv"
	"wshttp/status"
)

// ParseHeaders splits a raw header block into name/value pairs, adding them
// to into in arrival order. Names keep their original spelling, values lose
// surrounding optional whitespace. Duplicates aren't merged. Nothing is
// copied out of raw, so the pairs stay valid for as long as raw does.
func ParseHeaders(raw []byte, into *kv.Storage) error {
	for len(raw) > 0 {
		line := raw
		if i := bytes.IndexByte(raw, '\n'); i != -1 {
			line, raw = raw[:i+1], raw[i+1:]
		} else {
			raw = nil
		}

		line = bytes.TrimSuffix(line, []byte{'\n'})
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}

		colon := bytes.IndexByte(line, ':')
		if colon == -1 {
			return status.ErrMalformedHeader
		}

		into.Add(uf.B2S(line[:colon]), strutil.StripWS(uf.B2S(line[colon+1:])))
	}

	return nil
}
