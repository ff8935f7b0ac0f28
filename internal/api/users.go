package api

import (
	"errors"
	"net/http"

	"moonradar/internal/middleware"
	"moonradar/internal/model"
	"moonradar/internal/service"
	"moonradar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userRoutes struct {
	us service.UserServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, sa *middleware.SessionAuth) {
	r := &userRoutes{us: us}

	users := handler.Group("/users", sa.RequireSession())
	{
		users.PATCH("/settings", r.UpdateSettings)
	}

	vip := handler.Group("/vip", sa.RequireSession())
	{
		vip.POST("/upgrade", r.UpgradeVip)
	}

	invite := handler.Group("/invite", sa.RequireSession())
	{
		invite.GET("/generate", r.GenerateInviteLink)
		invite.POST("/send", r.SendInvite)
		invite.GET("/list", r.ListInvites)
	}
}

type UpdateSettingsRequest struct {
	DarkMode      *bool `json:"darkMode"`
	Notifications *bool `json:"notifications"`
}

func (r *userRoutes) UpdateSettings(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.us.UpdateSettings(c.Request.Context(), userID, model.UserSettings{
		DarkMode:      req.DarkMode,
		Notifications: req.Notifications,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("failed to update settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (r *userRoutes) UpgradeVip(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := r.us.UpgradeVip(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("failed to upgrade user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade to VIP"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (r *userRoutes) GenerateInviteLink(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	link, err := r.us.GenerateInviteLink(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("failed to generate invite link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invite link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":          link.URL,
		"referralCode": link.ReferralCode,
	})
}

type SendInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r *userRoutes) SendInvite(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := r.us.SendInvite(c.Request.Context(), userID, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("failed to send invite", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invite"})
		return
	}

	c.JSON(http.StatusCreated, newInviteResponse(invite))
}

func (r *userRoutes) ListInvites(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invites, err := r.us.ListInvites(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list invites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invites"})
		return
	}

	out := make([]inviteResponse, len(invites))
	for i, inv := range invites {
		out[i] = newInviteResponse(inv)
	}

	c.JSON(http.StatusOK, out)
}
