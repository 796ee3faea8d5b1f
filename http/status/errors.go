package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest          = NewError(BadRequest, "bad request")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")

	// request-line parsing failures. All of them are client mistakes, so map
	// onto 400 Bad Request
	ErrTooShort             = NewError(BadRequest, "request is too short")
	ErrNoLineEnding         = NewError(BadRequest, "no line ending")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrUnknownMethod        = NewError(BadRequest, "unknown request method")
	ErrInvalidURI           = NewError(BadRequest, "invalid request URI")
	ErrInvalidVersion       = NewError(BadRequest, "invalid protocol version")
)
