package model

import "time"

type WatchlistItem struct {
	ID         int64
	UserID     int64
	CoinID     string
	CoinSymbol string
	CreatedAt  time.Time
}
