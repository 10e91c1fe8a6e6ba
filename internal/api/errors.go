package api

import "errors"

// ErrorKind separates failures the server reported from failures that
// happened on the way there.
type ErrorKind string

const (
	// KindTransport covers dial/read failures and undecodable bodies:
	// the request never completed a meaningful round trip.
	KindTransport ErrorKind = "transport"
	// KindApplication covers non-2xx responses: the server answered and
	// rejected the operation.
	KindApplication ErrorKind = "application"
)

// genericNetworkMessage is the fallback when an error response body is
// not valid JSON.
const genericNetworkMessage = "Network error"

// errMissingParent flags an input whose parent foreign key is empty.
var errMissingParent = errors.New("missing parent id")

// Error is the uniform failure every client operation returns. Message
// is always human-readable; Status carries the HTTP status for
// application errors and is zero for transport errors.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsApplication reports whether err is a server-reported rejection and,
// if so, returns the HTTP status it carried.
func IsApplication(err error) (int, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindApplication {
		return apiErr.Status, true
	}
	return 0, false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransport
}
