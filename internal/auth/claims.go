package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// The registered Subject claim carries the user's email; UserID duplicates
// the numeric id for handler convenience and is not re-checked against
// storage beyond the subject lookup.
type Claims struct {
	jwt.RegisteredClaims

	UserID    int64     `json:"uid"`
	TokenType TokenType `json:"token_type"`
}
