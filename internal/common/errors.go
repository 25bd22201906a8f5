// Package common provides shared utilities and types used across the application.
package common

import "errors"

// ErrInvalidInput marks malformed or out-of-range user input. It is raised
// at the boundary, before any store call is made, and wrapped with the
// specific complaint so callers can match on it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
