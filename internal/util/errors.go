package util

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrEmptyResult       = errors.New("ai returned no usable items")
	ErrAIUnavailable     = errors.New("ai request failed")
	ErrRequestInFlight   = errors.New("a request for this feature is already in progress")
	ErrProRequired       = errors.New("feature requires a lifetime plan")
)
