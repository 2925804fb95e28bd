package types

import (
	"time"
)

// OTPChallenge is a record in the otp_challenges collection. CodeHash holds
// the bcrypt hash of the 6-digit code; the plain code never touches the
// store.
type OTPChallenge struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CodeHash  string    `json:"code_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}
