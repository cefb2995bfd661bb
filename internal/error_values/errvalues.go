package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("record belongs to another user")

	ErrProfileNotFound = errors.New("user profile doesn't exist")

	ErrItemNotFound     = errors.New("wishlist item doesn't exist")
	ErrItemNotReady     = errors.New("wishlist item is not ready to review")
	ErrCooldownRequired = errors.New("amount above impulse threshold requires a cooldown")

	ErrTaxItemNotFound = errors.New("adhd tax item doesn't exist")

	ErrBadgeUnknown = errors.New("badge id is not in the catalogue")
)
