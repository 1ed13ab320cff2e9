package services

import "errors"

// Failure conditions surfaced by the services. Controllers match these with
// errors.Is and translate them to a response status and message.
var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAlreadyEnrolled    = errors.New("user already enrolled in this course")
	ErrNotEnrolled        = errors.New("user not enrolled in this course")
	ErrNotFound           = errors.New("record not found")
	ErrUnauthorized       = errors.New("operation not permitted")
)
