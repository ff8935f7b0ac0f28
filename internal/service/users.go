package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moonradar/internal/model"
	"moonradar/internal/repository"
)

const vipDuration = 30 * 24 * time.Hour

type UserService struct {
	users         UserRepository
	invites       InviteRepository
	inviteBaseURL string
}

func NewUserService(users UserRepository, invites InviteRepository, inviteBaseURL string) *UserService {
	return &UserService{
		users:         users,
		invites:       invites,
		inviteBaseURL: inviteBaseURL,
	}
}

func (s *UserService) UpdateSettings(ctx context.Context, userID int64, settings model.UserSettings) (*model.User, error) {
	user, err := s.users.UpdateUserSettings(ctx, userID, settings)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return sanitize(user), nil
}

// UpgradeVip flips the VIP flag and resets the expiry to 30 days from
// now. Repeated upgrades restart the window rather than extending it.
func (s *UserService) UpgradeVip(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.UpgradeUserVip(ctx, userID, time.Now().Add(vipDuration))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}
	return sanitize(user), nil
}

func (s *UserService) GenerateInviteLink(ctx context.Context, userID int64) (*model.InviteLink, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &model.InviteLink{
		URL:          fmt.Sprintf("%s/invite?ref=%s", s.inviteBaseURL, user.ReferralCode),
		ReferralCode: user.ReferralCode,
	}, nil
}

func (s *UserService) SendInvite(ctx context.Context, userID int64, inviteeEmail string) (*model.Invite, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	invite := &model.Invite{
		InviterID:    userID,
		InviteeEmail: inviteeEmail,
		Status:       model.InviteStatusPending,
		CreatedAt:    time.Now(),
	}

	err := s.invites.CreateInvite(ctx, invite)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	return invite, nil
}

func (s *UserService) ListInvites(ctx context.Context, userID int64) ([]*model.Invite, error) {
	invites, err := s.invites.ListInvitesByInviter(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return invites, nil
}
