package service

import (
	"context"
	"errors"
	"time"

	"moonradar/internal/model"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrUserExists         = errors.New("email or username already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyWatched     = errors.New("coin already in watchlist")
	ErrNotInWatchlist     = errors.New("coin not in watchlist")
)

type Service struct {
	*AuthService
	*UserService
	*WatchlistService
}

func NewService(authService *AuthService, userService *UserService, watchlistService *WatchlistService) *Service {
	return &Service{
		AuthService:      authService,
		UserService:      userService,
		WatchlistService: watchlistService,
	}
}

type AuthServiceI interface {
	Register(ctx context.Context, username, email, password string, referredBy *string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}

type UserServiceI interface {
	UpdateSettings(ctx context.Context, userID int64, settings model.UserSettings) (*model.User, error)
	UpgradeVip(ctx context.Context, userID int64) (*model.User, error)
	GenerateInviteLink(ctx context.Context, userID int64) (*model.InviteLink, error)
	SendInvite(ctx context.Context, userID int64, inviteeEmail string) (*model.Invite, error)
	ListInvites(ctx context.Context, userID int64) ([]*model.Invite, error)
}

type WatchlistServiceI interface {
	List(ctx context.Context, userID int64) ([]*model.WatchlistItem, error)
	Add(ctx context.Context, userID int64, coinID, coinSymbol string) (*model.WatchlistItem, error)
	Remove(ctx context.Context, userID int64, coinID string) error
	IsWatching(ctx context.Context, userID int64, coinID string) (bool, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*model.User, error)
	UpdateUserSettings(ctx context.Context, id int64, settings model.UserSettings) (*model.User, error)
	UpgradeUserVip(ctx context.Context, id int64, expiresAt time.Time) (*model.User, error)
}

type WatchlistRepository interface {
	ListWatchlist(ctx context.Context, userID int64) ([]*model.WatchlistItem, error)
	GetWatchlistItem(ctx context.Context, userID int64, coinID string) (*model.WatchlistItem, error)
	AddWatchlistItem(ctx context.Context, item *model.WatchlistItem) error
	RemoveWatchlistItem(ctx context.Context, userID int64, coinID string) error
}

type InviteRepository interface {
	CreateInvite(ctx context.Context, invite *model.Invite) error
	ListInvitesByInviter(ctx context.Context, inviterID int64) ([]*model.Invite, error)
	MarkInviteAccepted(ctx context.Context, inviterID int64, inviteeEmail string) error
}
