package application

import "errors"

var (
	// ErrUnauthenticated means no user identity was established for the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUnauthorized means the acting user does not own the target store.
	ErrUnauthorized = errors.New("unauthorized")
)
