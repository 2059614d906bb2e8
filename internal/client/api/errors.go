package api

import "fmt"

// Kind is the category of a client failure. Callers branch on Kind via
// errors.Is against the package sentinels instead of inspecting transport
// internals.
type Kind int

const (
	KindInvalidURL Kind = iota
	KindEncodingError
	KindDecodingError
	KindInvalidResponse
	KindServerError
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindNetworkUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid url"
	case KindEncodingError:
		return "encoding error"
	case KindDecodingError:
		return "decoding error"
	case KindInvalidResponse:
		return "invalid response"
	case KindServerError:
		return "server error"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindNetworkUnavailable:
		return "network unavailable"
	}
	return "unknown"
}

// Error is a categorized client failure. Code carries the HTTP status when
// one was received; Message carries any detail extracted from the response.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error of the same Kind, so sentinels below work
// with errors.Is regardless of Code and Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Description maps the failure to a user-facing message.
func (e *Error) Description() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Invalid URL"
	case KindEncodingError:
		return "Failed to encode request"
	case KindDecodingError:
		return "Failed to decode response"
	case KindInvalidResponse:
		return "Invalid response from server"
	case KindServerError:
		if e.Message == "" {
			return fmt.Sprintf("Server error with code: %d", e.Code)
		}
		return e.Message
	case KindUnauthorized:
		return "Unauthorized access"
	case KindForbidden:
		return "Access forbidden"
	case KindNotFound:
		return "Resource not found"
	case KindNetworkUnavailable:
		return "Network unavailable"
	}
	return "An unknown error occurred"
}

// Sentinels for errors.Is matching.
var (
	ErrInvalidURL         = &Error{Kind: KindInvalidURL}
	ErrEncodingError      = &Error{Kind: KindEncodingError}
	ErrDecodingError      = &Error{Kind: KindDecodingError}
	ErrInvalidResponse    = &Error{Kind: KindInvalidResponse}
	ErrServerError        = &Error{Kind: KindServerError}
	ErrUnauthorized       = &Error{Kind: KindUnauthorized}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrNetworkUnavailable = &Error{Kind: KindNetworkUnavailable}
)
