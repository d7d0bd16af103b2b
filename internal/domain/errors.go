package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrChannelExists      = errors.New("channel already exists")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPasswordTooLong    = errors.New("password too long")
)
