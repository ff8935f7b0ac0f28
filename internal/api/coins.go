package api

import (
	"errors"
	"net/http"

	"moonradar/internal/coindata"
	"moonradar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type coinRoutes struct {
	coins coindata.Provider
}

// NewCoinRoutes registers the public coin endpoints. The fixed paths are
// registered before the :symbol wildcard so "moonshot" and "by-phase"
// are not swallowed by the symbol lookup.
func NewCoinRoutes(handler *gin.RouterGroup, coins coindata.Provider) {
	r := &coinRoutes{coins: coins}

	h := handler.Group("/coins")
	{
		h.GET("/moonshot", r.Moonshot)
		h.GET("/by-phase", r.GroupedByPhase)
		h.GET("/:symbol", r.GetBySymbol)
	}
}

func (r *coinRoutes) GetBySymbol(c *gin.Context) {
	log := logger.Logger()

	symbol := c.Param("symbol")

	coin, err := r.coins.GetBySymbol(symbol)
	if err != nil {
		if errors.Is(err, coindata.ErrCoinNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coin not found"})
			return
		}
		log.Error("failed to get coin", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coin"})
		return
	}

	c.JSON(http.StatusOK, coin)
}

func (r *coinRoutes) Moonshot(c *gin.Context) {
	c.JSON(http.StatusOK, r.coins.MoonshotOfMonth())
}

func (r *coinRoutes) GroupedByPhase(c *gin.Context) {
	c.JSON(http.StatusOK, r.coins.GroupedByPhase())
}
