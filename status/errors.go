package status

// Error carries, next to the human-readable message, the status code a
// rejecting endpoint would answer the peer with. Errors are compared by
// value, so reader failures can be matched against the variables below
// directly or via errors.Is.
type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

var (
	ErrTooLongLine     = NewError(BadRequest, "line is too long")
	ErrMissingCRLF     = NewError(BadRequest, "line without CRLF")
	ErrMalformedHeader = NewError(BadRequest, "malformed header line")
	ErrInvalidStatus   = NewError(BadRequest, "malformed response status code")

	ErrTooManyHeaders  = NewError(HeaderFieldsTooLarge, "too many headers")
	ErrTooLargeHeaders = NewError(HeaderFieldsTooLarge, "too large headers section")

	ErrUnsupportedMethod  = NewError(NotImplemented, "request method is not supported")
	ErrUnsupportedVersion = NewError(HTTPVersionNotSupported, "HTTP version not supported")
)
