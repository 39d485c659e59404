package entity

import "errors"

// Failure categories shared by all stores and services. Handlers map
// these onto HTTP statuses; everything else is treated as a store failure.
var (
	ErrValidation         = errors.New("validation failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreTimeout       = errors.New("store timeout")
)
