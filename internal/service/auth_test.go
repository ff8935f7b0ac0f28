package service

import (
	"context"
	"testing"

	"moonradar/internal/model"
	"moonradar/internal/repository"
	"moonradar/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		referredBy    *string
		mockSetup     func(users *mocks.MockUserRepository, invites *mocks.MockInviteRepository)
		expectedError error
		checkUser     func(*testing.T, *model.User, *mocks.MockUserRepository)
	}{
		{
			name:     "Email already in use",
			username: "alice",
			email:    "alice@x.com",
			mockSetup: func(users *mocks.MockUserRepository, _ *mocks.MockInviteRepository) {
				users.On("GetUserByEmail", mock.Anything, "alice@x.com").
					Return(&model.User{ID: 1, Email: "alice@x.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "Username already in use",
			username: "alice",
			email:    "alice@x.com",
			mockSetup: func(users *mocks.MockUserRepository, _ *mocks.MockInviteRepository) {
				users.On("GetUserByEmail", mock.Anything, "alice@x.com").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByUsername", mock.Anything, "alice").
					Return(&model.User{ID: 2, Username: "alice"}, nil)
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Successful registration",
			username: "alice",
			email:    "alice@x.com",
			mockSetup: func(users *mocks.MockUserRepository, _ *mocks.MockInviteRepository) {
				users.On("GetUserByEmail", mock.Anything, "alice@x.com").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByUsername", mock.Anything, "alice").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByReferralCode", mock.Anything, mock.Anything).
					Return(nil, repository.ErrNotFound)
				users.On("CreateUser", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 7
					}).
					Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User, users *mocks.MockUserRepository) {
				assert.Equal(t, int64(7), user.ID)
				assert.Empty(t, user.PasswordHash)
				assert.NotEmpty(t, user.ReferralCode)
				assert.False(t, user.IsVip)
				assert.Nil(t, user.VipExpiresAt)
				assert.True(t, user.DarkMode)
				assert.False(t, user.Notifications)

				// The stored record must carry a verifiable bcrypt hash.
				created := users.Calls[len(users.Calls)-1].Arguments.Get(1).(*model.User)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(created.PasswordHash), []byte("secret1")))
			},
		},
		{
			name:       "Referral marks pending invite accepted",
			username:   "bob",
			email:      "bob@x.com",
			referredBy: strPtr("abc12345"),
			mockSetup: func(users *mocks.MockUserRepository, invites *mocks.MockInviteRepository) {
				users.On("GetUserByEmail", mock.Anything, "bob@x.com").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByUsername", mock.Anything, "bob").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByReferralCode", mock.Anything, mock.MatchedBy(func(code string) bool {
					return code != "abc12345"
				})).Return(nil, repository.ErrNotFound)
				users.On("GetUserByReferralCode", mock.Anything, "abc12345").
					Return(&model.User{ID: 3, ReferralCode: "abc12345"}, nil)
				users.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
				invites.On("MarkInviteAccepted", mock.Anything, int64(3), "bob@x.com").
					Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User, _ *mocks.MockUserRepository) {
				assert.NotNil(t, user.ReferredBy)
				assert.Equal(t, "abc12345", *user.ReferredBy)
			},
		},
		{
			name:     "Unique index backstop on insert",
			username: "carol",
			email:    "carol@x.com",
			mockSetup: func(users *mocks.MockUserRepository, _ *mocks.MockInviteRepository) {
				users.On("GetUserByEmail", mock.Anything, "carol@x.com").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByUsername", mock.Anything, "carol").
					Return(nil, repository.ErrNotFound)
				users.On("GetUserByReferralCode", mock.Anything, mock.Anything).
					Return(nil, repository.ErrNotFound)
				users.On("CreateUser", mock.Anything, mock.Anything).
					Return(repository.ErrAlreadyExists)
			},
			expectedError: ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.MockUserRepository{}
			invites := &mocks.MockInviteRepository{}
			tt.mockSetup(users, invites)

			s := NewAuthService(users, invites)
			user, err := s.Register(context.Background(), tt.username, tt.email, "secret1", tt.referredBy)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				if tt.checkUser != nil {
					tt.checkUser(t, user, users)
				}
			}

			users.AssertExpectations(t)
			invites.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &model.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		mockSetup     func(users *mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "Unknown email",
			email:    "ghost@x.com",
			password: "secret1",
			mockSetup: func(users *mocks.MockUserRepository) {
				users.On("GetUserByEmail", mock.Anything, "ghost@x.com").
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			email:    "alice@x.com",
			password: "wrongpass",
			mockSetup: func(users *mocks.MockUserRepository) {
				users.On("GetUserByEmail", mock.Anything, "alice@x.com").
					Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Successful login",
			email:    "alice@x.com",
			password: "secret1",
			mockSetup: func(users *mocks.MockUserRepository) {
				users.On("GetUserByEmail", mock.Anything, "alice@x.com").
					Return(stored, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mocks.MockUserRepository{}
			tt.mockSetup(users)

			s := NewAuthService(users, &mocks.MockInviteRepository{})
			user, err := s.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password must be the same error
				// so the caller cannot tell which field was wrong.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.Empty(t, user.PasswordHash)
			}
		})
	}
}

func TestAuthService_CurrentUser(t *testing.T) {
	users := &mocks.MockUserRepository{}
	users.On("GetUserByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, Username: "alice", PasswordHash: "hash"}, nil)
	users.On("GetUserByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrNotFound)

	s := NewAuthService(users, &mocks.MockInviteRepository{})

	user, err := s.CurrentUser(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Empty(t, user.PasswordHash)

	_, err = s.CurrentUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func strPtr(s string) *string { return &s }
