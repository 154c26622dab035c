package usecase

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPlanRequired       = errors.New("paid plan required")
	ErrValidation         = errors.New("validation failed")
)
