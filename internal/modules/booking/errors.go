package booking

import "errors"

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyClosed   = errors.New("property not accepting bookings")
	ErrIntentNotFound   = errors.New("booking intent not found")
	ErrIntentExpired    = errors.New("booking intent expired")
	ErrNotPending       = errors.New("booking intent is not pending")
	ErrForbidden        = errors.New("forbidden")
)
