package auth

import "errors"

// Verification failures are distinguishable so callers can react differently:
// an expired access token should prompt a refresh, anything else a re-login.
var (
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	ErrTokenMalformed   = errors.New("auth: malformed token")
	ErrMissingSubject   = errors.New("auth: subject claim missing")
	ErrWrongTokenType   = errors.New("auth: wrong token type")
)
