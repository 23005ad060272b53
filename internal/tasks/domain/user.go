package domain

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string     // argon2id PHC, or bcrypt for accounts imported from the old deployment
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	MFAEnabledAt *time.Time // set once the first TOTP code is verified
	CreatedAt    time.Time
}

// MFAEnabled reports whether login requires a TOTP code.
func (u User) MFAEnabled() bool {
	return u.MFAEnabledAt != nil && u.MFASecret != nil
}
