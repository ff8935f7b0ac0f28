package api

import (
	"errors"
	"net/http"

	"moonradar/internal/middleware"
	"moonradar/internal/service"
	"moonradar/internal/session"
	"moonradar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type authRoutes struct {
	auth     service.AuthServiceI
	sessions session.Store
	cookie   SessionCookie
}

func NewAuthRoutes(handler *gin.RouterGroup, auth service.AuthServiceI, sessions session.Store, cookie SessionCookie, sa *middleware.SessionAuth) {
	r := &authRoutes{auth: auth, sessions: sessions, cookie: cookie}

	h := handler.Group("/auth")
	{
		h.POST("/register", r.Register)
		h.POST("/login", r.Login)
		h.POST("/logout", r.Logout)
		h.GET("/me", sa.RequireSession(), r.Me)
	}
}

type RegisterRequest struct {
	Username   string  `json:"username" binding:"required,min=3"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	ReferredBy *string `json:"referredBy"`
}

func (r *authRoutes) Register(c *gin.Context) {
	log := logger.Logger()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ReferredBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already in use"})
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or username already in use"})
		default:
			log.Error("failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r *authRoutes) Login(c *gin.Context) {
	log := logger.Logger()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := r.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Error("failed to login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	sessionID, err := r.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.SetCookie(r.cookie.Name, sessionID, r.cookie.MaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, newUserResponse(user))
}

// Logout is idempotent: a missing or already-destroyed session still
// yields 200 and a cleared cookie.
func (r *authRoutes) Logout(c *gin.Context) {
	log := logger.Logger()

	sessionID, err := c.Cookie(r.cookie.Name)
	if err == nil && sessionID != "" {
		if err := r.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			log.Error("failed to delete session", zap.Error(err))
		}
	}

	c.SetCookie(r.cookie.Name, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (r *authRoutes) Me(c *gin.Context) {
	log := logger.Logger()

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := r.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		log.Error("failed to get current user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
