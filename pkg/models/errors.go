package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUserExists       = errors.New("user already exists")
)

// Validation errors
var (
	ErrInvalidCategory = errors.New("the transaction type is not a registered category")
	ErrInvalidPocket   = errors.New("the pocket is not a registered pocket")
	ErrInvalidPaidBy   = errors.New("paidBy must be one of the household roles")
	ErrInvalidRole     = errors.New("the role must be one of the household roles")
	ErrNoteRequired    = errors.New("a note is required")
	ErrNegativeAmount  = errors.New("the amount must not be negative")
	ErrInvalidAmount   = errors.New("the amount must be a whole number of Rupiah below 1.000.000.000.000")
	ErrInvalidMonth    = errors.New("the month must be between 1 and 12")
	ErrUsernameEmpty   = errors.New("the username must not be empty")
	ErrEmailEmpty      = errors.New("the email must not be empty")
)
