package auth

import "errors"

// Token validation errors returned by the JWT service.
var (
	// ErrInvalidToken is returned when a token is malformed, carries an
	// invalid signature, or otherwise fails validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry time has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before time is
	// in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
