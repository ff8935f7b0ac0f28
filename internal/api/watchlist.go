package api

import (
	"errors"
	"net/http"

	"moonradar/internal/middleware"
	"moonradar/internal/service"
	"moonradar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type watchlistRoutes struct {
	ws service.WatchlistServiceI
}

func NewWatchlistRoutes(handler *gin.RouterGroup, ws service.WatchlistServiceI, sa *middleware.SessionAuth) {
	r := &watchlistRoutes{ws: ws}

	h := handler.Group("/watchlist", sa.RequireSession())
	{
		h.GET("", r.List)
		h.POST("", r.Add)
		h.DELETE("/:coinId", r.Remove)
	}
}

func (r *watchlistRoutes) List(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := r.ws.List(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list watchlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get watchlist"})
		return
	}

	out := make([]watchlistItemResponse, len(items))
	for i, item := range items {
		out[i] = newWatchlistItemResponse(item)
	}

	c.JSON(http.StatusOK, out)
}

type AddWatchlistRequest struct {
	CoinID     string `json:"coinId" binding:"required"`
	CoinSymbol string `json:"coinSymbol" binding:"required"`
}

func (r *watchlistRoutes) Add(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := r.ws.Add(c.Request.Context(), userID, req.CoinID, req.CoinSymbol)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyWatched) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Coin already in watchlist"})
			return
		}
		log.Error("failed to add watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	c.JSON(http.StatusCreated, newWatchlistItemResponse(item))
}

func (r *watchlistRoutes) Remove(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	coinID := c.Param("coinId")

	err := r.ws.Remove(c.Request.Context(), userID, coinID)
	if err != nil {
		if errors.Is(err, service.ErrNotInWatchlist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coin not in watchlist"})
			return
		}
		log.Error("failed to remove watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist"})
}
