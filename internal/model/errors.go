package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrMalformedEntry  = errors.New("entry must be of the form NAME=SCORE")
	ErrEmptyPlayerName = errors.New("player name is empty")
	ErrInvalidScore    = errors.New("score is not a number")

	// Output errors
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
