package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidURL   = errors.New("invalid target url")
	ErrInvalidCode  = errors.New("invalid code")
	ErrCodeConflict = errors.New("code already exists")
)
