package api

// Error is a classified backend failure. Kind is one of the sentinels in
// the common package, so errors.Is(err, common.ErrConflict) works on any
// error returned by this package. Message carries the human-readable text,
// preferring what the backend sent.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	if message == "" {
		message = kind.Error()
	}
	return &Error{Kind: kind, Message: message}
}
