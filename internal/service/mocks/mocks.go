package mocks

import (
	"context"
	"time"

	"moonradar/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserSettings(ctx context.Context, id int64, settings model.UserSettings) (*model.User, error) {
	args := m.Called(ctx, id, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpgradeUserVip(ctx context.Context, id int64, expiresAt time.Time) (*model.User, error) {
	args := m.Called(ctx, id, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) ListWatchlist(ctx context.Context, userID int64) ([]*model.WatchlistItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WatchlistItem), args.Error(1)
}

func (m *MockWatchlistRepository) GetWatchlistItem(ctx context.Context, userID int64, coinID string) (*model.WatchlistItem, error) {
	args := m.Called(ctx, userID, coinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WatchlistItem), args.Error(1)
}

func (m *MockWatchlistRepository) AddWatchlistItem(ctx context.Context, item *model.WatchlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWatchlistRepository) RemoveWatchlistItem(ctx context.Context, userID int64, coinID string) error {
	args := m.Called(ctx, userID, coinID)
	return args.Error(0)
}

type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) CreateInvite(ctx context.Context, invite *model.Invite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) ListInvitesByInviter(ctx context.Context, inviterID int64) ([]*model.Invite, error) {
	args := m.Called(ctx, inviterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Invite), args.Error(1)
}

func (m *MockInviteRepository) MarkInviteAccepted(ctx context.Context, inviterID int64, inviteeEmail string) error {
	args := m.Called(ctx, inviterID, inviteeEmail)
	return args.Error(0)
}
