package domain

import "errors"

var (
	ErrConflict           = errors.New("record already exists")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnsupportedImage   = errors.New("images only: jpeg, jpg or png")
)
