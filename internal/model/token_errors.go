package model

import "errors"

var (
	ErrInvalidToken = errors.New("token signature is invalid")
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenClaims means the token verified but lacks the claims its purpose requires.
	ErrTokenClaims  = errors.New("token claims do not match purpose")
	ErrTokenRevoked = errors.New("token revoked")
)
