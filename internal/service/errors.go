package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")
	ErrWrongPagePassword   = errors.New("wrong page password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoTitle    = errors.New("no page title provided")
	ErrValidationNoPassword = errors.New("no page password provided")
	ErrValidationNoMemories = errors.New("no memories provided")
)
