package api

import (
	"time"

	"moonradar/internal/model"
)

// SessionCookie describes the auth cookie handed to clients. MaxAge is
// in seconds and should match the session store TTL.
type SessionCookie struct {
	Name   string
	MaxAge int
}

// userResponse deliberately has no password field: user payloads must
// never carry the hash regardless of how the model was populated.
type userResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	IsVip         bool       `json:"isVip"`
	VipExpiresAt  *time.Time `json:"vipExpiresAt"`
	ReferralCode  string     `json:"referralCode"`
	ReferredBy    *string    `json:"referredBy"`
	DarkMode      bool       `json:"darkMode"`
	Notifications bool       `json:"notifications"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func newUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		IsVip:         u.IsVip,
		VipExpiresAt:  u.VipExpiresAt,
		ReferralCode:  u.ReferralCode,
		ReferredBy:    u.ReferredBy,
		DarkMode:      u.DarkMode,
		Notifications: u.Notifications,
		CreatedAt:     u.CreatedAt,
	}
}

type watchlistItemResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	CoinID     string    `json:"coinId"`
	CoinSymbol string    `json:"coinSymbol"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newWatchlistItemResponse(item *model.WatchlistItem) watchlistItemResponse {
	return watchlistItemResponse{
		ID:         item.ID,
		UserID:     item.UserID,
		CoinID:     item.CoinID,
		CoinSymbol: item.CoinSymbol,
		CreatedAt:  item.CreatedAt,
	}
}

type inviteResponse struct {
	ID           int64              `json:"id"`
	InviterID    int64              `json:"inviterId"`
	InviteeEmail string             `json:"inviteeEmail"`
	Status       model.InviteStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func newInviteResponse(inv *model.Invite) inviteResponse {
	return inviteResponse{
		ID:           inv.ID,
		InviterID:    inv.InviterID,
		InviteeEmail: inv.InviteeEmail,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
	}
}
