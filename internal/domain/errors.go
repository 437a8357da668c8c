package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up")
	ErrNotSignedUp      = errors.New("not signed up")
)
