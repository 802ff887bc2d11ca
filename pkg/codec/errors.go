package codec

import "errors"

// ErrorKind classifies parse failures. The format has a single kind today.
type ErrorKind string

const (
	// KindMalformedPayload marks an empty, undecodable or wrongly shaped
	// button payload.
	KindMalformedPayload ErrorKind = "malformed_payload"
)

// ErrMalformedPayload matches any ParseError of KindMalformedPayload via
// errors.Is.
var ErrMalformedPayload = errors.New("codec: malformed payload")

// ParseError wraps the underlying decode or shape error of a block.
type ParseError struct {
	Kind ErrorKind
	Err  error
}

func newMalformed(err error) *ParseError {
	return &ParseError{Kind: KindMalformedPayload, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil || e.Err == nil {
		return "malformed payload"
	}
	return "malformed payload: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrMalformedPayload) match.
func (e *ParseError) Is(target error) bool {
	return e != nil && target == ErrMalformedPayload && e.Kind == KindMalformedPayload
}
