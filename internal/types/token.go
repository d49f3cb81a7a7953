package types

import "github.com/google/uuid"

// TokenClaims carries the identity encoded in a session token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
