package config

import "time"

type (
	Message struct {
		// MaxLineLength limits the length of a single line, the terminator
		// included. Lines past the limit are never handed to the caller.
		MaxLineLength int
		// MaxHeaders limits how many header lines may precede the blank
		// terminator line.
		MaxHeaders int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	Headers struct {
		// Space bounds the accumulation buffer storing the raw header block.
		Space HeadersSpace
		// Prealloc is the number of seats reserved in the resulting header
		// storage.
		Prealloc int
	}

	NET struct {
		// ReadBufferSize is the size of the buffer a single socket read fills.
		ReadBufferSize int
		// ReadTimeout bounds a single read off the connection. Zero disables
		// the deadline.
		ReadTimeout time.Duration
	}
)

// Config holds the restrictions and pre-allocations the readers obey. Prefer
// modifying values returned by Default() over constructing one manually, as
// zero limits render every message invalid.
type Config struct {
	Message Message
	Headers Headers
	NET     NET
}

// Default returns the canonical limits: 4096 bytes per line, 256 header
// lines per message.
func Default() Config {
	return Config{
		Message: Message{
			MaxLineLength: 4096,
			MaxHeaders:    256,
		},
		Headers: Headers{
			Space: HeadersSpace{
				Default: 1 * 1024, // a handshake rarely carries more than 1kb of headers
				Maximal: 4096 * 256,
			},
			Prealloc: 10,
		},
		NET: NET{
			ReadBufferSize: 2 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}

// Fill replaces zero fields of the passed config with defaults.
func Fill(original Config) (modified Config) {
	defaults := Default()

	original.Message.MaxLineLength = customOrDefault(
		original.Message.MaxLineLength, defaults.Message.MaxLineLength,
	)
	original.Message.MaxHeaders = customOrDefault(
		original.Message.MaxHeaders, defaults.Message.MaxHeaders,
	)
	original.Headers.Space.Default = customOrDefault(
		original.Headers.Space.Default, defaults.Headers.Space.Default,
	)
	original.Headers.Space.Maximal = customOrDefault(
		original.Headers.Space.Maximal, defaults.Headers.Space.Maximal,
	)
	original.Headers.Prealloc = customOrDefault(
		original.Headers.Prealloc, defaults.Headers.Prealloc,
	)
	original.NET.ReadBufferSize = customOrDefault(
		original.NET.ReadBufferSize, defaults.NET.ReadBufferSize,
	)

	return original
}

func customOrDefault(custom, defaultVal int) int {
	if custom == 0 {
		return defaultVal
	}

	return custom
}
