package services

import "errors"

// ErrorKind classifies every failure the domain services can surface.
// Controllers map each kind to exactly one HTTP status.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindForbidden
	KindAlreadyReacted
)

type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NotFound(message string) error {
	return &DomainError{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) error {
	return &DomainError{Kind: KindForbidden, Message: message}
}

func AlreadyReacted(message string) error {
	return &DomainError{Kind: KindAlreadyReacted, Message: message}
}

func Internal(message string, err error) error {
	return &DomainError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of a domain error, or KindInternal for any
// error the services did not classify themselves.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// PublicMessage returns the message safe to show a client. Internal
// errors never expose their underlying cause.
func PublicMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) && de.Kind != KindInternal {
		return de.Message
	}
	return "Internal server error"
}
