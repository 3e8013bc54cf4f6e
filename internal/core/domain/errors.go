package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrNotSignedIn       = errors.New("not signed in")
)
