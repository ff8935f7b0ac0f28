package memory

import (
	"context"
	"testing"
	"time"

	"moonradar/internal/model"
	"moonradar/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username, email, code string) *model.User {
	return &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		ReferralCode: code,
		DarkMode:     true,
		CreatedAt:    time.Now(),
	}
}

func TestRepository_UserUniqueness(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newUser("alice", "alice@x.com", "code1")))

	assert.ErrorIs(t, repo.CreateUser(ctx, newUser("alice", "other@x.com", "code2")), repository.ErrAlreadyExists)
	assert.ErrorIs(t, repo.CreateUser(ctx, newUser("other", "alice@x.com", "code3")), repository.ErrAlreadyExists)
	assert.ErrorIs(t, repo.CreateUser(ctx, newUser("other", "other@x.com", "code1")), repository.ErrAlreadyExists)
}

func TestRepository_UserLookups(t *testing.T) {
	repo := New()
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", "code1")
	require.NoError(t, repo.CreateUser(ctx, u))
	require.Equal(t, int64(1), u.ID)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byName, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byCode, err := repo.GetUserByReferralCode(ctx, "code1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byCode.ID)

	_, err = repo.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_UpdateSettingsPartial(t *testing.T) {
	repo := New()
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", "code1")
	require.NoError(t, repo.CreateUser(ctx, u))

	darkMode := false
	updated, err := repo.UpdateUserSettings(ctx, u.ID, model.UserSettings{DarkMode: &darkMode})
	require.NoError(t, err)
	assert.False(t, updated.DarkMode)
	// Unspecified fields keep their prior values.
	assert.False(t, updated.Notifications)

	notifications := true
	updated, err = repo.UpdateUserSettings(ctx, u.ID, model.UserSettings{Notifications: &notifications})
	require.NoError(t, err)
	assert.False(t, updated.DarkMode)
	assert.True(t, updated.Notifications)
}

func TestRepository_UpgradeUserVip(t *testing.T) {
	repo := New()
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", "code1")
	require.NoError(t, repo.CreateUser(ctx, u))

	expiry := time.Now().Add(30 * 24 * time.Hour)
	updated, err := repo.UpgradeUserVip(ctx, u.ID, expiry)
	require.NoError(t, err)
	assert.True(t, updated.IsVip)
	require.NotNil(t, updated.VipExpiresAt)
	assert.WithinDuration(t, expiry, *updated.VipExpiresAt, time.Second)

	// A second upgrade overwrites the expiry rather than extending it.
	later := expiry.Add(48 * time.Hour)
	updated, err = repo.UpgradeUserVip(ctx, u.ID, later)
	require.NoError(t, err)
	assert.WithinDuration(t, later, *updated.VipExpiresAt, time.Second)
}

func TestRepository_WatchlistRoundTrip(t *testing.T) {
	repo := New()
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", "code1")
	require.NoError(t, repo.CreateUser(ctx, u))

	item := &model.WatchlistItem{UserID: u.ID, CoinID: "moon", CoinSymbol: "MOON", CreatedAt: time.Now()}
	require.NoError(t, repo.AddWatchlistItem(ctx, item))
	assert.Equal(t, int64(1), item.ID)

	dup := &model.WatchlistItem{UserID: u.ID, CoinID: "moon", CoinSymbol: "MOON", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.AddWatchlistItem(ctx, dup), repository.ErrAlreadyExists)

	items, err := repo.ListWatchlist(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "moon", items[0].CoinID)

	require.NoError(t, repo.RemoveWatchlistItem(ctx, u.ID, "moon"))
	assert.ErrorIs(t, repo.RemoveWatchlistItem(ctx, u.ID, "moon"), repository.ErrNotFound)

	items, err = repo.ListWatchlist(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_InviteAcceptance(t *testing.T) {
	repo := New()
	ctx := context.Background()

	inv := &model.Invite{InviterID: 1, InviteeEmail: "bob@x.com", Status: model.InviteStatusPending, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInvite(ctx, inv))

	other := &model.Invite{InviterID: 1, InviteeEmail: "carol@x.com", Status: model.InviteStatusPending, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateInvite(ctx, other))

	require.NoError(t, repo.MarkInviteAccepted(ctx, 1, "bob@x.com"))

	invites, err := repo.ListInvitesByInviter(ctx, 1)
	require.NoError(t, err)
	require.Len(t, invites, 2)
	assert.Equal(t, model.InviteStatusAccepted, invites[0].Status)
	assert.Equal(t, model.InviteStatusPending, invites[1].Status)
}
