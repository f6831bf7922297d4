package core

import "fmt"

// Kind classifies a quiz engine failure. Handlers switch on Kind rather
// than inspecting error strings or concrete types.
type Kind int

const (
	// KindMissingParameter means a required <id> argument was absent.
	KindMissingParameter Kind = iota
	// KindInvalidParameter means the <id> argument was not numeric.
	KindInvalidParameter
	// KindNotFound means no quiz exists for the given id.
	KindNotFound
	// KindValidation means the repository rejected a create/update;
	// FieldErrors carries one message per offending field.
	KindValidation
	// KindStore covers every other repository failure.
	KindStore
	// KindIO means the session transport failed; the session ends.
	KindIO
)

// Error is the tagged failure type shared by the repository and the
// session engine.
type Error struct {
	Kind        Kind
	Message     string
	FieldErrors []string
	Err         error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "quiz error"
}

func (e *Error) Unwrap() error { return e.Err }

// ErrMissingParameter reports an absent <id> argument.
func ErrMissingParameter() *Error {
	return &Error{Kind: KindMissingParameter, Message: "missing <id> parameter"}
}

// ErrInvalidParameter reports a non-numeric <id> argument.
func ErrInvalidParameter(raw string) *Error {
	return &Error{Kind: KindInvalidParameter, Message: fmt.Sprintf("the <id> parameter %q is not a number", raw)}
}

// ErrNotFound reports that no quiz exists for id.
func ErrNotFound(id int64) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("no quiz exists with id=%d", id)}
}

// ErrValidation reports rejected quiz content.
func ErrValidation(fields []string) *Error {
	return &Error{Kind: KindValidation, Message: "the quiz is invalid", FieldErrors: fields}
}

// ErrStore wraps an unexpected repository failure.
func ErrStore(err error) *Error {
	return &Error{Kind: KindStore, Message: "storage failure", Err: err}
}

// ErrIO wraps a transport failure on the session's terminal.
func ErrIO(err error) *Error {
	return &Error{Kind: KindIO, Message: "terminal closed", Err: err}
}
