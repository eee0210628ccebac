package status

type (
	Code   uint16
	Status string
)

// The subset of IANA-registered status codes a handshake endpoint may answer
// with when it rejects a malformed or unacceptable message.
const (
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2

	BadRequest           Code = 400 // RFC 9110, 15.5.1
	HeaderFieldsTooLarge Code = 431 // RFC 6585, 5

	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

func Text(code Code) Status {
	switch code {
	case SwitchingProtocols:
		return "Switching Protocols"
	case BadRequest:
		return "Bad Request"
	case HeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}
