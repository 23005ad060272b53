package domain

import "time"

const TokenTypeBearer = "bearer"

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// RefreshToken is the stored rotation record of one login session. The row
// is overwritten in place on every refresh, so only the newest token string
// of a session ever matches.
type RefreshToken struct {
	ID        int64
	Token     string
	UserID    int64
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the token is past its expiry at now.
func (t RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// BlacklistedToken is an access token invalidated by logout before its
// natural expiry. Rows are never updated.
type BlacklistedToken struct {
	ID            int64
	Token         string
	UserID        int64
	ExpiresAt     time.Time
	BlacklistedAt time.Time
}
