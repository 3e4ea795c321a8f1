package domain

import "errors"

// Domain errors. The error text doubles as the user-facing detail message
// returned by the API.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student is already signed up")
	ErrNotRegistered    = errors.New("Student is not registered for this activity")
	ErrActivityFull     = errors.New("Activity is full")
	ErrEmailRequired    = errors.New("Email is required")
)
