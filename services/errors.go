package services

import "errors"

var (
	ErrUnauthorized = errors.New("could not validate credentials")
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("not enough permissions")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service unavailable")
)
