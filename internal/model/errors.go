package model

import "errors"

// Kind classifies the failures a summary run can end with.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidURL
	KindIncompleteIdentifier
	KindUnexpectedPathKeyword
	KindAuthFailure
	KindTransportFailure
	KindNotFound
)

var kindNames = map[Kind]string{
	KindUnknown:               "unknown",
	KindInvalidURL:            "invalid_url",
	KindIncompleteIdentifier:  "incomplete_identifier",
	KindUnexpectedPathKeyword: "unexpected_path_keyword",
	KindAuthFailure:           "auth_failure",
	KindTransportFailure:      "transport_failure",
	KindNotFound:              "not_found",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a classified failure with a message meant for the user.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError creates an Error of the given kind that wraps cause.
func WrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
// This lets callers write errors.Is(err, &model.Error{Kind: model.KindNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
