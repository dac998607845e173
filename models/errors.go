package models

import "errors"

// Domain error taxonomy. Services return these sentinels (possibly
// wrapped); controllers map them to HTTP statuses.
var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrNotProvisioned      = errors.New("doctor not registered by admin")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenMissing = errors.New("refresh token is missing")
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("access denied")
	ErrDeliveryFailed      = errors.New("email delivery failed")
)
