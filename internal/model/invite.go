package model

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

type Invite struct {
	ID           int64
	InviterID    int64
	InviteeEmail string
	Status       InviteStatus
	CreatedAt    time.Time
}

// InviteLink is derived from the inviter's stored referral code and is
// never persisted.
type InviteLink struct {
	URL          string
	ReferralCode string
}
