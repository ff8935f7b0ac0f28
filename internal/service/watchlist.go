package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moonradar/internal/model"
	"moonradar/internal/repository"
)

type WatchlistService struct {
	repo WatchlistRepository
}

func NewWatchlistService(repo WatchlistRepository) *WatchlistService {
	return &WatchlistService{repo: repo}
}

func (s *WatchlistService) List(ctx context.Context, userID int64) ([]*model.WatchlistItem, error) {
	items, err := s.repo.ListWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}
	return items, nil
}

// Add checks for an existing entry before inserting; the unique index on
// (user_id, coin_id) remains the backstop against concurrent adds.
func (s *WatchlistService) Add(ctx context.Context, userID int64, coinID, coinSymbol string) (*model.WatchlistItem, error) {
	_, err := s.repo.GetWatchlistItem(ctx, userID, coinID)
	if err == nil {
		return nil, ErrAlreadyWatched
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check watchlist: %w", err)
	}

	item := &model.WatchlistItem{
		UserID:     userID,
		CoinID:     coinID,
		CoinSymbol: coinSymbol,
		CreatedAt:  time.Now(),
	}

	err = s.repo.AddWatchlistItem(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyWatched
		}
		return nil, fmt.Errorf("failed to add watchlist item: %w", err)
	}

	return item, nil
}

func (s *WatchlistService) Remove(ctx context.Context, userID int64, coinID string) error {
	err := s.repo.RemoveWatchlistItem(ctx, userID, coinID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotInWatchlist
		}
		return fmt.Errorf("failed to remove watchlist item: %w", err)
	}
	return nil
}

func (s *WatchlistService) IsWatching(ctx context.Context, userID int64, coinID string) (bool, error) {
	_, err := s.repo.GetWatchlistItem(ctx, userID, coinID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check watchlist: %w", err)
	}
	return true, nil
}
