package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moonradar/internal/model"
	"moonradar/internal/repository"
	"moonradar/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const referralCodeAttempts = 5

type AuthService struct {
	users   UserRepository
	invites InviteRepository
}

func NewAuthService(users UserRepository, invites InviteRepository) *AuthService {
	return &AuthService{
		users:   users,
		invites: invites,
	}
}

// Register creates an account with a freshly generated referral code.
// The stored password is a bcrypt hash; the returned user carries no
// hash so it can be handed to the API layer as-is.
func (s *AuthService) Register(ctx context.Context, username, email, password string, referredBy *string) (*model.User, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.generateReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      username,
		Email:         email,
		PasswordHash:  string(hash),
		IsVip:         false,
		ReferralCode:  code,
		ReferredBy:    referredBy,
		DarkMode:      true,
		Notifications: false,
		CreatedAt:     time.Now(),
	}

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if referredBy != nil && *referredBy != "" {
		s.acceptPendingInvite(ctx, *referredBy, email)
	}

	return sanitize(user), nil
}

// acceptPendingInvite marks the inviter's pending invite for this email
// accepted. Registration itself never fails on invite bookkeeping.
func (s *AuthService) acceptPendingInvite(ctx context.Context, referralCode, email string) {
	inviter, err := s.users.GetUserByReferralCode(ctx, referralCode)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Logger().Warn("failed to resolve referral code", zap.Error(err))
		}
		return
	}

	if err := s.invites.MarkInviteAccepted(ctx, inviter.ID, email); err != nil {
		logger.Logger().Warn("failed to mark invite accepted",
			zap.Int64("inviter_id", inviter.ID), zap.Error(err))
	}
}

// Login verifies the credential pair. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitize(user), nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return sanitize(user), nil
}

func (s *AuthService) generateReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := strings.SplitN(uuid.New().String(), "-", 2)[0]

		_, err := s.users.GetUserByReferralCode(ctx, code)
		if errors.Is(err, repository.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
	}
	return "", errors.New("failed to generate a unique referral code")
}

// sanitize strips the password hash before the user leaves the service
// layer.
func sanitize(u *model.User) *model.User {
	out := *u
	out.PasswordHash = ""
	return &out
}
