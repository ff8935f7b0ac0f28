package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moonradar/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type user struct {
	ID            int64      `db:"id"`
	Username      string     `db:"username"`
	Email         string     `db:"email"`
	PasswordHash  string     `db:"password"`
	IsVip         bool       `db:"is_vip"`
	VipExpiresAt  *time.Time `db:"vip_expires_at"`
	ReferralCode  string     `db:"referral_code"`
	ReferredBy    *string    `db:"referred_by"`
	DarkMode      bool       `db:"dark_mode"`
	Notifications bool       `db:"notifications"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (u *user) toModel() *model.User {
	return &model.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		IsVip:         u.IsVip,
		VipExpiresAt:  u.VipExpiresAt,
		ReferralCode:  u.ReferralCode,
		ReferredBy:    u.ReferredBy,
		DarkMode:      u.DarkMode,
		Notifications: u.Notifications,
		CreatedAt:     u.CreatedAt,
	}
}

func (r *Repository) CreateUser(ctx context.Context, u *model.User) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("users").
			SetMap(map[string]interface{}{
				"username":      u.Username,
				"email":         u.Email,
				"password":      u.PasswordHash,
				"is_vip":        u.IsVip,
				"referral_code": u.ReferralCode,
				"referred_by":   u.ReferredBy,
				"dark_mode":     u.DarkMode,
				"notifications": u.Notifications,
				"created_at":    u.CreatedAt,
			}).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build user insert query: %w", err)
		}

		err = tx.GetContext(ctx, &u.ID, query, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}

		return nil
	})
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"id": id})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"email": email})
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"username": username})
}

func (r *Repository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"referral_code": code})
}

func (r *Repository) getUserBy(ctx context.Context, pred squirrel.Eq) (*model.User, error) {
	var u user
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &u, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u.toModel(), nil
}

func (r *Repository) UpdateUserSettings(ctx context.Context, id int64, settings model.UserSettings) (*model.User, error) {
	builder := squirrel.
		Update("users").
		Where(squirrel.Eq{"id": id})

	if settings.DarkMode != nil {
		builder = builder.Set("dark_mode", *settings.DarkMode)
	}
	if settings.Notifications != nil {
		builder = builder.Set("notifications", *settings.Notifications)
	}
	if settings.DarkMode == nil && settings.Notifications == nil {
		return r.GetUserByID(ctx, id)
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetUserByID(ctx, id)
}

func (r *Repository) UpgradeUserVip(ctx context.Context, id int64, expiresAt time.Time) (*model.User, error) {
	query, args, err := squirrel.
		Update("users").
		Set("is_vip", true).
		Set("vip_expires_at", expiresAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build vip update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade user: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetUserByID(ctx, id)
}
