package model

import "errors"

// Common errors used across the application
var (
	// Piece errors
	ErrInvalidTag = errors.New("invalid piece tag")

	// Input errors
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownKey     = errors.New("unknown key")
	ErrInvalidScript  = errors.New("invalid script")

	// Configuration errors
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
)
