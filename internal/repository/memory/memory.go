// Package memory provides a map-backed storage implementation used for
// local development and tests, interchangeable with the Postgres
// repository.
package memory

import (
	"context"
	"sync"
	"time"

	"moonradar/internal/model"
	"moonradar/internal/repository"
)

type Repository struct {
	mu sync.Mutex

	users     map[int64]*model.User
	watchlist map[int64]*model.WatchlistItem
	invites   map[int64]*model.Invite

	nextUserID      int64
	nextWatchlistID int64
	nextInviteID    int64
}

func New() *Repository {
	return &Repository{
		users:           make(map[int64]*model.User),
		watchlist:       make(map[int64]*model.WatchlistItem),
		invites:         make(map[int64]*model.Invite),
		nextUserID:      1,
		nextWatchlistID: 1,
		nextInviteID:    1,
	}
}

func (r *Repository) Close() error { return nil }

func (r *Repository) CreateUser(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email ||
			existing.ReferralCode == u.ReferralCode {
			return repository.ErrAlreadyExists
		}
	}

	u.ID = r.nextUserID
	r.nextUserID++

	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *Repository) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *Repository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return r.findUser(func(u *model.User) bool { return u.Email == email })
}

func (r *Repository) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return r.findUser(func(u *model.User) bool { return u.Username == username })
}

func (r *Repository) GetUserByReferralCode(_ context.Context, code string) (*model.User, error) {
	return r.findUser(func(u *model.User) bool { return u.ReferralCode == code })
}

func (r *Repository) findUser(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Repository) UpdateUserSettings(_ context.Context, id int64, settings model.UserSettings) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if settings.DarkMode != nil {
		u.DarkMode = *settings.DarkMode
	}
	if settings.Notifications != nil {
		u.Notifications = *settings.Notifications
	}

	out := *u
	return &out, nil
}

func (r *Repository) UpgradeUserVip(_ context.Context, id int64, expiresAt time.Time) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	u.IsVip = true
	t := expiresAt
	u.VipExpiresAt = &t

	out := *u
	return &out, nil
}

func (r *Repository) ListWatchlist(_ context.Context, userID int64) ([]*model.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]*model.WatchlistItem, 0)
	for id := int64(1); id < r.nextWatchlistID; id++ {
		item, ok := r.watchlist[id]
		if ok && item.UserID == userID {
			out := *item
			items = append(items, &out)
		}
	}
	return items, nil
}

func (r *Repository) GetWatchlistItem(_ context.Context, userID int64, coinID string) (*model.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.lookupWatchlistItem(userID, coinID)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *item
	return &out, nil
}

func (r *Repository) AddWatchlistItem(_ context.Context, item *model.WatchlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookupWatchlistItem(item.UserID, item.CoinID); ok {
		return repository.ErrAlreadyExists
	}

	item.ID = r.nextWatchlistID
	r.nextWatchlistID++

	stored := *item
	r.watchlist[item.ID] = &stored
	return nil
}

func (r *Repository) RemoveWatchlistItem(_ context.Context, userID int64, coinID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.lookupWatchlistItem(userID, coinID)
	if !ok {
		return repository.ErrNotFound
	}

	delete(r.watchlist, item.ID)
	return nil
}

func (r *Repository) lookupWatchlistItem(userID int64, coinID string) (*model.WatchlistItem, bool) {
	for _, item := range r.watchlist {
		if item.UserID == userID && item.CoinID == coinID {
			return item, true
		}
	}
	return nil, false
}

func (r *Repository) CreateInvite(_ context.Context, inv *model.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv.ID = r.nextInviteID
	r.nextInviteID++

	stored := *inv
	r.invites[inv.ID] = &stored
	return nil
}

func (r *Repository) ListInvitesByInviter(_ context.Context, inviterID int64) ([]*model.Invite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	invites := make([]*model.Invite, 0)
	for id := int64(1); id < r.nextInviteID; id++ {
		inv, ok := r.invites[id]
		if ok && inv.InviterID == inviterID {
			out := *inv
			invites = append(invites, &out)
		}
	}
	return invites, nil
}

func (r *Repository) MarkInviteAccepted(_ context.Context, inviterID int64, inviteeEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.invites {
		if inv.InviterID == inviterID && inv.InviteeEmail == inviteeEmail &&
			inv.Status == model.InviteStatusPending {
			inv.Status = model.InviteStatusAccepted
		}
	}
	return nil
}
