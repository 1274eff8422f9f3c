package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds callers can branch on with errors.Is
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("service unavailable")
)

// apiError carries the remote service's message alongside its kind
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string {
	if e.msg == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.msg)
}

func (e *apiError) Unwrap() error {
	return e.kind
}

// errorFromStatus maps a remote response status to an error kind
func errorFromStatus(status int, msg string) error {
	switch {
	case status == http.StatusNotFound:
		return &apiError{kind: ErrNotFound, msg: msg}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &apiError{kind: ErrValidation, msg: msg}
	default:
		return &apiError{kind: ErrUnavailable, msg: msg}
	}
}
