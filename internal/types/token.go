package types

import "github.com/google/uuid"

// TokenClaims represents the validated contents of a JWT
type TokenClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
