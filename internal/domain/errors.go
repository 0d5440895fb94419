package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account already exists")
	ErrNoImages           = errors.New("at least one image is required")
	ErrMissingFields      = errors.New("location and features are required")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyQuery         = errors.New("query and city are both empty")
	ErrBusy               = errors.New("a reply is already pending")
)
