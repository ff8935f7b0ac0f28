package model

import "time"

type User struct {
	ID            int64
	Username      string
	Email         string
	PasswordHash  string
	IsVip         bool
	VipExpiresAt  *time.Time
	ReferralCode  string
	ReferredBy    *string
	DarkMode      bool
	Notifications bool
	CreatedAt     time.Time
}

// UserSettings carries a partial settings update. Nil fields keep
// their current values.
type UserSettings struct {
	DarkMode      *bool
	Notifications *bool
}
