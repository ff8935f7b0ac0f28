package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moonradar/internal/model"

	"github.com/Masterminds/squirrel"
)

type watchlistItem struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	CoinID     string    `db:"coin_id"`
	CoinSymbol string    `db:"coin_symbol"`
	CreatedAt  time.Time `db:"created_at"`
}

func (w *watchlistItem) toModel() *model.WatchlistItem {
	return &model.WatchlistItem{
		ID:         w.ID,
		UserID:     w.UserID,
		CoinID:     w.CoinID,
		CoinSymbol: w.CoinSymbol,
		CreatedAt:  w.CreatedAt,
	}
}

func (r *Repository) ListWatchlist(ctx context.Context, userID int64) ([]*model.WatchlistItem, error) {
	query, args, err := squirrel.
		Select("*").
		From("watchlist").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []*watchlistItem
	err = r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}

	out := make([]*model.WatchlistItem, len(items))
	for i, item := range items {
		out[i] = item.toModel()
	}

	return out, nil
}

func (r *Repository) GetWatchlistItem(ctx context.Context, userID int64, coinID string) (*model.WatchlistItem, error) {
	var item watchlistItem
	query, args, err := squirrel.
		Select("*").
		From("watchlist").
		Where(squirrel.Eq{"user_id": userID, "coin_id": coinID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item.toModel(), nil
}

func (r *Repository) AddWatchlistItem(ctx context.Context, item *model.WatchlistItem) error {
	query, args, err := squirrel.
		Insert("watchlist").
		SetMap(map[string]interface{}{
			"user_id":     item.UserID,
			"coin_id":     item.CoinID,
			"coin_symbol": item.CoinSymbol,
			"created_at":  item.CreatedAt,
		}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build watchlist insert query: %w", err)
	}

	err = r.db.GetContext(ctx, &item.ID, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert watchlist item: %w", err)
	}

	return nil
}

func (r *Repository) RemoveWatchlistItem(ctx context.Context, userID int64, coinID string) error {
	query, args, err := squirrel.
		Delete("watchlist").
		Where(squirrel.Eq{"user_id": userID, "coin_id": coinID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build watchlist delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
