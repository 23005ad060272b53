package jwtx

import (
	"strconv"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultAccessTokenTTL is how long an access token stays valid.
	DefaultAccessTokenTTL = 60 * time.Minute

	// DefaultRefreshTokenTTL is how long a refresh token stays valid.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TypeRefresh marks a refresh token. Access tokens carry no type claim.
const TypeRefresh = "refresh"

// Claims are the claims carried by both token kinds. Subject is the decimal
// user id.
type Claims struct {
	jwt.RegisteredClaims

	Type string `json:"type,omitempty"`
}

// NewAccessClaims builds access token claims for userID.
func NewAccessClaims(userID int64, ttl time.Duration, now time.Time) Claims {
	return newClaims(userID, "", ttl, now)
}

// NewRefreshClaims builds refresh token claims for userID.
func NewRefreshClaims(userID int64, ttl time.Duration, now time.Time) Claims {
	return newClaims(userID, TypeRefresh, ttl, now)
}

func newClaims(userID int64, typ string, ttl time.Duration, now time.Time) Claims {
	// exp has one second resolution on the wire; truncate so the value we
	// persist matches what a verifier decodes.
	now = now.UTC().Truncate(time.Second)
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.NewAt(now).String(),
		},
		Type: typ,
	}
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool { return c.Type == TypeRefresh }

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, ErrMissingSubject
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaim
	}
	return id, nil
}

// Expiry returns exp as a UTC time, or the zero time when absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.UTC()
}
