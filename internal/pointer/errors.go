package pointer

import "fmt"

// ErrorKind classifies pointer failures
type ErrorKind string

const (
	KindMalformedPointer        ErrorKind = "malformed pointer"
	KindEmptyPointer            ErrorKind = "empty pointer"
	KindTypeMismatch            ErrorKind = "type mismatch"
	KindIndexOutOfRange         ErrorKind = "index out of range"
	KindKeyNotFound             ErrorKind = "key not found"
	KindIntermediatePathMissing ErrorKind = "intermediate path missing"
	KindDashNotLast             ErrorKind = "dash not last"
)

// Sentinels for use with errors.Is. Only the kind is compared.
var (
	ErrMalformedPointer        = &Error{Kind: KindMalformedPointer, Message: "pointer must start with '/'"}
	ErrEmptyPointer            = &Error{Kind: KindEmptyPointer, Message: "set pointer must not be empty"}
	ErrTypeMismatch            = &Error{Kind: KindTypeMismatch}
	ErrIndexOutOfRange         = &Error{Kind: KindIndexOutOfRange}
	ErrKeyNotFound             = &Error{Kind: KindKeyNotFound}
	ErrIntermediatePathMissing = &Error{Kind: KindIntermediatePathMissing, Message: "pointer to non-existing key must be the last item"}
	ErrDashNotLast             = &Error{Kind: KindDashNotLast, Message: "'-' must be the last item in the pointer"}
)

// Error is returned by every pointer operation
type Error struct {
	Kind    ErrorKind
	Pointer string
	// Token is the decoded reference token being applied when the failure occurred.
	Token   string
	Message string
}

// Error implements error interface
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Pointer == "" {
		return msg
	}
	return fmt.Sprintf("json pointer %q: %s", e.Pointer, msg)
}

// Is implements errors.Is for comparison
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind ErrorKind, pointer, token, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Pointer: pointer,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}
